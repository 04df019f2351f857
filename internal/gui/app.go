package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/langswitch/internal"
	"codeberg.org/snonux/langswitch/internal/catalog"
	"codeberg.org/snonux/langswitch/internal/localize"
)

// maxDemoRows caps how many catalog rows the demo window displays
const maxDemoRows = 8

// Application represents the demo GUI: a handful of widgets whose text
// comes from the catalog, and a selector that switches their language.
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	languageSelect *widget.Select
	reapplyButton  *ttwidget.Button
	statusLabel    *widget.Label

	// Localization
	registry    *Registry
	coordinator *localize.Coordinator
}

// New creates the demo application for the given catalog, starting in
// defaultLanguage
func New(table *catalog.Table, defaultLanguage string) (*Application, error) {
	a := &Application{
		app:      app.NewWithID("org.codeberg.snonux.langswitch"),
		registry: NewRegistry(),
	}
	a.coordinator = localize.New(table, a.registry, defaultLanguage)
	a.coordinator.Warnf = func(format string, args ...any) {
		a.updateStatus(fmt.Sprintf(format, args...))
	}

	if err := a.setupUI(table, defaultLanguage); err != nil {
		return nil, err
	}
	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI(table *catalog.Table, defaultLanguage string) error {
	a.window = a.app.NewWindow(fmt.Sprintf("langswitch v%s", internal.Version))
	a.window.Resize(fyne.NewSize(420, 480))

	demo, err := a.buildDemoWidgets(table, defaultLanguage)
	if err != nil {
		return err
	}

	// Language selector; assign OnChanged after seeding the selection so
	// startup does not trigger a redundant switch
	a.languageSelect = widget.NewSelect(a.coordinator.AvailableLanguages(), nil)
	a.languageSelect.Selected = defaultLanguage
	a.languageSelect.OnChanged = a.onLanguageSelected

	a.reapplyButton = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onReapply)

	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.Wrapping = fyne.TextWrapWord

	selector := container.NewBorder(nil, nil, nil, a.reapplyButton, a.languageSelect)

	content := container.NewBorder(
		container.NewVBox(selector, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), a.statusLabel),
		nil, nil,
		container.NewVScroll(demo),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.reapplyButton.SetToolTip("Re-apply the selected language to all slots")

	return nil
}

// buildDemoWidgets creates one widget per catalog row (up to maxDemoRows)
// in the startup language and registers each as a localizable slot. The
// first rows use different widget kinds so every slot adapter is visible.
func (a *Application) buildDemoWidgets(table *catalog.Table, lang string) (fyne.CanvasObject, error) {
	rows := table.Rows()
	if rows > maxDemoRows {
		rows = maxDemoRows
	}

	box := container.NewVBox()
	for i := 0; i < rows; i++ {
		value, err := table.Value(i, lang)
		if err != nil {
			return nil, fmt.Errorf("failed to build demo widgets: %w", err)
		}

		switch i {
		case 1:
			button := widget.NewButton(value, func() {})
			box.Add(button)
			a.registry.Add(ButtonSlot{Button: button})
		case 2:
			entry := widget.NewEntry()
			entry.SetPlaceHolder(value)
			box.Add(entry)
			a.registry.Add(EntrySlot{Entry: entry})
		case 3:
			check := widget.NewCheck(value, func(bool) {})
			box.Add(check)
			a.registry.Add(CheckSlot{Check: check})
		default:
			label := widget.NewLabel(value)
			box.Add(label)
			a.registry.Add(LabelSlot{Label: label})
		}
	}

	return box, nil
}

// onLanguageSelected switches every registered slot to the chosen language
func (a *Application) onLanguageSelected(lang string) {
	stats, err := a.coordinator.SetLanguage(lang)
	if err != nil {
		a.updateStatus(fmt.Sprintf("Switch failed: %v", err))
		return
	}
	a.updateStatus(fmt.Sprintf("Switched to %s: %d applied, %d skipped",
		lang, stats.Applied, stats.Skipped))
}

// onReapply re-runs the switch for the currently selected language
func (a *Application) onReapply() {
	if a.languageSelect.Selected != "" {
		a.onLanguageSelected(a.languageSelect.Selected)
	}
}

// updateStatus updates the status label
func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}
