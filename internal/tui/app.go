package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ThomasAtlantis/MarkSort/internal/browser"
	"github.com/ThomasAtlantis/MarkSort/internal/category"
	"github.com/ThomasAtlantis/MarkSort/internal/config"
	"github.com/ThomasAtlantis/MarkSort/internal/feed"
	"github.com/ThomasAtlantis/MarkSort/internal/fetch"
	"github.com/ThomasAtlantis/MarkSort/internal/item"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeLoading mode = iota
	modeBrowse
	modeFailed
	modeHelp
)

// App is the bubbletea model. The item and category collections are
// immutable once a load lands; every keystroke only moves cursors or
// swaps which in-memory projection is displayed.
type App struct {
	cfg    *config.Config
	client fetch.Client

	mode     mode
	items    []item.Item
	filtered []item.Item
	catBar   categoryBar

	cursor        int
	focus         focusPane
	previewScroll int
	width         int
	height        int

	spinner    spinner.Model
	sourceErrs []error
	loadErr    error
	openErr    error
}

func NewApp(cfg *config.Config, client fetch.Client) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:     cfg,
		client:  client,
		mode:    modeLoading,
		spinner: sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a *App) loadCmd() tea.Cmd {
	cfg := a.cfg
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeoutDuration())
		defer cancel()
		return loadDoneMsg{result: feed.FetchAll(ctx, client, cfg.EnabledSources())}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.openErr = nil
		return a.handleKey(msg)

	case loadDoneMsg:
		a.sourceErrs = msg.result.Errors
		if err := msg.result.Err(); err != nil {
			a.mode = modeFailed
			a.loadErr = err
			return a, nil
		}
		a.items = msg.result.Items
		a.catBar = newCategoryBar(category.Derive(a.items), a.items)
		a.applyCategory()
		a.mode = modeBrowse
		return a, nil

	case openErrMsg:
		a.openErr = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

// applyCategory projects the active category's view of the collection.
func (a *App) applyCategory() {
	a.filtered = category.Filter(a.items, a.catBar.current())
	a.cursor = 0
	a.previewScroll = 0
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	switch a.mode {
	case modeLoading:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case modeFailed:
		switch msg.String() {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			a.mode = modeLoading
			a.loadErr = nil
			return a, tea.Batch(a.spinner.Tick, a.loadCmd())
		}
		return a, nil
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeBrowse
		}
		return a, nil
	}

	// Browse mode.
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.filtered)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "h", "left":
		a.catBar.prev()
		a.applyCategory()
		return a, nil
	case "l", "right":
		a.catBar.next()
		a.applyCategory()
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if it := a.selected(); it != nil {
			return a, openCmd(it.URL)
		}
		return a, nil
	case "v":
		if it := a.selected(); it != nil {
			switch {
			case it.VideoURL != "":
				return a, openCmd(it.VideoURL)
			case it.Embed != nil:
				return a, openCmd(it.Embed.PlayerURL())
			}
		}
		return a, nil
	case "r":
		a.mode = modeLoading
		return a, tea.Batch(a.spinner.Tick, a.loadCmd())
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) selected() *item.Item {
	if len(a.filtered) == 0 || a.cursor >= len(a.filtered) {
		return nil
	}
	return &a.filtered[a.cursor]
}

func openCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  marksort")
	}

	switch a.mode {
	case modeLoading:
		return centerText(a.spinner.View()+" Loading marks...", a.width, a.height)
	case modeFailed:
		msg := errorStyle.Render("Could not load any source.")
		var details []string
		for _, e := range a.sourceErrs {
			details = append(details, "  "+e.Error())
		}
		body := msg + "\n\n" + helpDimStyle.Render(strings.Join(details, "\n")) +
			"\n\n" + helpDimStyle.Render("r retry  q quit")
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
	case modeHelp:
		return a.renderHelp()
	}

	headerHeight := 1
	tabsHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - tabsHeight - statusHeight - 4 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	headerLeft := headerStyle.Render("marksort")
	headerRight := headerDateStyle.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	tabs := a.catBar.render(a.width)

	innerListW := listWidth - 4
	listContent := renderList(a.filtered, a.cursor, contentHeight, innerListW)
	listPane := listPaneStyle
	if a.focus == focusList {
		listPane = listPaneActiveStyle
	}
	list := listPane.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)
	previewPane := previewPaneStyle
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle
	}
	preview := previewPane.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, list, preview)

	status := renderStatusBar(
		len(a.filtered), len(a.items),
		a.catBar.current().Name,
		len(a.sourceErrs),
		a.width,
		false,
	)
	if a.openErr != nil {
		status = errorStyle.Render(a.openErr.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("marksort")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the mark list\n" +
		"  h/l, ←/→     Switch category\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open the original post or video\n" +
		"  v             Open the video stream / embedded player\n" +
		"  r             Reload sources\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, helpCardStyle.Render(help))
}

// Run starts the TUI.
func Run(cfg *config.Config, client fetch.Client) error {
	p := tea.NewProgram(NewApp(cfg, client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
