package ui

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/AkatukiSora/poker-hand-stats/internal/application"
	"github.com/AkatukiSora/poker-hand-stats/internal/stats"
	"github.com/AkatukiSora/poker-hand-stats/internal/watcher"
)

// App is the main application controller.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	fyneApp fyne.App
	win     fyne.Window

	service    *application.Service
	historyDir string
	watchers   []*watcher.HistoryWatcher

	mu         sync.Mutex
	closeOnce  sync.Once
	lastReport *stats.Report
	gameType   string

	tabs       *container.AppTabs
	tabContent [5]*fyne.Container
	gameSelect *widget.Select
	statusText *widget.Label
}

// Run starts the application, importing existing histories from historyDir
// and watching it for new hands.
func Run(service *application.Service, historyDir string) {
	if service == nil {
		return
	}

	a := app.New()
	a.Settings().SetTheme(newPokerTheme())

	win := a.NewWindow("Poker Hand Stats")
	win.Resize(fyne.NewSize(1180, 760))
	win.SetMaster()

	ctx, cancel := context.WithCancel(context.Background())
	appCtrl := &App{
		ctx:        ctx,
		cancel:     cancel,
		fyneApp:    a,
		win:        win,
		service:    service,
		historyDir: historyDir,
		gameType:   "All",
	}

	win.SetCloseIntercept(func() {
		appCtrl.shutdown()
		win.SetCloseIntercept(nil)
		win.Close()
	})

	win.SetContent(appCtrl.buildUI())
	go appCtrl.bootstrap()
	win.ShowAndRun()
}

func (a *App) buildUI() fyne.CanvasObject {
	a.statusText = widget.NewLabel("Initializing...")
	a.statusText.Wrapping = fyne.TextWrapOff
	statusBar := container.NewHBox(widget.NewIcon(theme.InfoIcon()), a.statusText)

	a.gameSelect = widget.NewSelect([]string{"All"}, func(selected string) {
		a.mu.Lock()
		a.gameType = selected
		a.mu.Unlock()
		a.doRefreshTabs()
	})
	a.gameSelect.SetSelected("All")
	topBar := container.NewBorder(nil, nil, widget.NewLabel("Game Type"), nil, a.gameSelect)

	titles := [5]string{"Overview", "Positions", "Time", "Profit", "Catalog"}
	items := make([]*container.TabItem, len(titles))
	for i, title := range titles {
		a.tabContent[i] = container.NewStack(newEmptyState("No hands imported yet."))
		items[i] = container.NewTabItem(title, a.tabContent[i])
	}
	a.tabs = container.NewAppTabs(items...)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return container.NewBorder(
		container.NewPadded(topBar),
		container.NewPadded(statusBar),
		nil,
		nil,
		a.tabs,
	)
}

// bootstrap imports every existing history file, then starts one watcher per
// file plus directory watching for newly created exports.
func (a *App) bootstrap() {
	a.doSetStatus("Importing hand histories...")

	_, err := a.service.ImportAll(a.ctx, func(p application.ImportProgress) {
		a.doSetStatus(fmt.Sprintf("Importing... %d/%d files", p.Current, p.Total))
	})
	if err != nil {
		a.doSetStatus(fmt.Sprintf("Import: %v", err))
	} else {
		a.doSetStatus(fmt.Sprintf("Loaded %d hands, watching %s", len(a.service.Hands()), a.historyDir))
	}
	a.refreshReport()

	paths, err := watcher.DetectAllHistoryFiles(a.historyDir)
	if err != nil {
		a.doSetStatus(fmt.Sprintf("Watcher: %v", err))
		return
	}
	for _, path := range paths {
		a.watchFile(path, true)
	}
}

// watchFile tails a single history file and feeds appended text into the
// service. skipExisting starts from end-of-file for already-imported files.
func (a *App) watchFile(path string, skipExisting bool) {
	w, err := watcher.New(path, watcher.Config{
		OnNewData: func(text string, _, _ int64) {
			if added := a.service.AppendText(text); added > 0 {
				a.refreshReport()
				a.doSetStatus(fmt.Sprintf("Imported %d new hands", added))
			}
		},
		OnNewFile: func(newPath string) {
			a.watchFile(newPath, false)
		},
		OnError: func(err error) {
			a.doSetStatus(fmt.Sprintf("Watcher: %v", err))
		},
	})
	if err != nil {
		a.doSetStatus(fmt.Sprintf("Watcher: %v", err))
		return
	}
	if skipExisting {
		if info, err := os.Stat(path); err == nil {
			w.SetOffset(info.Size())
		}
	}
	if err := w.Start(); err != nil {
		a.doSetStatus(fmt.Sprintf("Watcher: %v", err))
		return
	}

	a.mu.Lock()
	a.watchers = append(a.watchers, w)
	a.mu.Unlock()
}

// refreshReport recomputes the report for the selected game type and
// schedules a UI refresh on the main thread.
func (a *App) refreshReport() {
	a.mu.Lock()
	gameType := a.gameType
	a.mu.Unlock()

	report := a.service.ReportForGameType(gameType)
	gameTypes := a.service.GameTypes()

	a.mu.Lock()
	a.lastReport = report
	a.mu.Unlock()

	fyne.Do(func() {
		if a.gameSelect != nil {
			a.gameSelect.Options = gameTypes
			a.gameSelect.Refresh()
		}
		a.doRefreshTabs()
	})
}

// doRefreshTabs rebuilds every tab from the last report. Must run on the
// Fyne main thread.
func (a *App) doRefreshTabs() {
	a.mu.Lock()
	r := a.lastReport
	a.mu.Unlock()

	views := [5]fyne.CanvasObject{
		NewOverviewTab(r),
		NewPositionsTab(r),
		NewTimeTab(r),
		NewProfitTab(r),
		NewCatalogTab(r),
	}
	for i, view := range views {
		if a.tabContent[i] == nil {
			continue
		}
		a.tabContent[i].Objects = []fyne.CanvasObject{view}
		a.tabContent[i].Refresh()
	}
}

// doSetStatus safely updates the status bar from any goroutine.
func (a *App) doSetStatus(msg string) {
	fyne.Do(func() {
		if a.statusText != nil {
			a.statusText.SetText(msg)
		}
	})
}

func (a *App) shutdown() {
	a.closeOnce.Do(func() {
		a.cancel()
		a.mu.Lock()
		watchers := a.watchers
		a.watchers = nil
		a.mu.Unlock()
		for _, w := range watchers {
			w.Stop()
		}
	})
}
