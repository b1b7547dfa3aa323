// Package rednote maps xiaohongshu note exports into the unified item
// model. A note comes in two shapes: the summary record alone, or the
// summary plus a richer "detail" sub-object captured per note. Detail
// fields supersede summary fields one by one, never wholesale, because a
// detail fetch can partially fail upstream.
package rednote

// Note is one record of the exported marks collection.
type Note struct {
	DisplayTitle string          `json:"display_title"`
	Type         string          `json:"type"`
	Cover        *Cover          `json:"cover"`
	User         User            `json:"user"`
	Interact     InteractSummary `json:"interact_info"`
	XsecToken    string          `json:"xsec_token"`
	NoteID       string          `json:"note_id"`
	Detail       *Detail         `json:"detail"`
}

type Cover struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	URLPre     string `json:"url_pre"`
	URLDefault string `json:"url_default"`
}

type User struct {
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	XsecToken string `json:"xsec_token"`
}

// InteractSummary is the only engagement data the summary shape carries.
type InteractSummary struct {
	Liked      bool   `json:"liked"`
	LikedCount string `json:"liked_count"`
}

type Detail struct {
	ID        string    `json:"id"`
	ModelType string    `json:"model_type"`
	NoteCard  *NoteCard `json:"note_card"`
}

type NoteCard struct {
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Desc           string          `json:"desc"`
	User           *User           `json:"user"`
	ImageList      []Image         `json:"image_list"`
	NoteID         string          `json:"note_id"`
	Interact       *InteractDetail `json:"interact_info"`
	Video          *Video          `json:"video"`
	TagList        []Tag           `json:"tag_list"`
	Time           int64           `json:"time"`
	LastUpdateTime int64           `json:"last_update_time"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Image struct {
	FileID     string `json:"file_id"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	URL        string `json:"url"`
	URLPre     string `json:"url_pre"`
	URLDefault string `json:"url_default"`
}

type InteractDetail struct {
	Liked          bool   `json:"liked"`
	LikedCount     string `json:"liked_count"`
	Collected      bool   `json:"collected"`
	CollectedCount string `json:"collected_count"`
	CommentCount   string `json:"comment_count"`
	ShareCount     string `json:"share_count"`
}

type Video struct {
	Capa  *Capa  `json:"capa"`
	Media *Media `json:"media"`
}

type Capa struct {
	Duration int `json:"duration"`
}

type Media struct {
	VideoID int64       `json:"video_id"`
	Stream  StreamTable `json:"stream"`
}

// StreamTable maps a codec family name (h264, h265, av1, h266, ...) to
// its stream variants.
type StreamTable map[string][]Stream

type Stream struct {
	MasterURL   string   `json:"master_url"`
	BackupURLs  []string `json:"backup_urls"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Duration    int      `json:"duration"`
	Format      string   `json:"format"`
	VideoCodec  string   `json:"video_codec"`
	QualityType string   `json:"quality_type"`
}
