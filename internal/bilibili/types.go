// Package bilibili maps bilibili favorites exports into the unified item
// model. The export comes from the fav/resource/list endpoint; one record
// per saved video.
package bilibili

// Media is one saved video in a favorites folder.
type Media struct {
	ID       int64   `json:"id"`
	Type     int     `json:"type"`
	Title    string  `json:"title"`
	Cover    string  `json:"cover"`
	Intro    string  `json:"intro"`
	Page     int     `json:"page"`
	Duration int     `json:"duration"`
	Upper    Upper   `json:"upper"`
	Attr     int     `json:"attr"`
	CntInfo  CntInfo `json:"cnt_info"`
	Link     string  `json:"link"`
	Ctime    int64   `json:"ctime"`
	Pubtime  int64   `json:"pubtime"`
	FavTime  int64   `json:"fav_time"`
	BvID     string  `json:"bv_id"`
	Bvid     string  `json:"bvid"`
	UGC      *UGC    `json:"ugc"`
}

// Upper is the uploader.
type Upper struct {
	Mid  int64  `json:"mid"`
	Name string `json:"name"`
	Face string `json:"face"`
}

type CntInfo struct {
	Collect int64 `json:"collect"`
	Play    int64 `json:"play"`
	Danmaku int64 `json:"danmaku"`
	Reply   int64 `json:"reply"`
}

// UGC holds the clip identifier the hosted player needs.
type UGC struct {
	FirstCid int64 `json:"first_cid"`
}
