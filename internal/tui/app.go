// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cardinalhq/pqlens/internal/anatomy"
	"github.com/cardinalhq/pqlens/internal/anatomy/view"
)

var tabNames = []string{"Structure", "Schema", "Data", "Metadata", "Stats"}

// App is the tabbed inspection session. It holds read references to the
// model and the row reader; nothing here mutates either.
type App struct {
	tviewApp *tview.Application
	pages    *tview.Pages
	tabBar   *tview.TextView

	model  *anatomy.Model
	reader view.RowReader

	current int
}

// New builds the session around an already-assembled model. The reader is
// only touched when the Data tab activates.
func New(model *anatomy.Model, reader view.RowReader) *App {
	return &App{
		tviewApp: tview.NewApplication(),
		pages:    tview.NewPages(),
		tabBar:   tview.NewTextView().SetDynamicColors(true),
		model:    model,
		reader:   reader,
	}
}

// Run displays the tabs and blocks until the user quits.
func (a *App) Run() error {
	for i, name := range tabNames {
		text := tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true)
		text.SetText(a.renderTab(i))
		text.SetBorder(true).SetTitle(" " + name + " ")
		a.pages.AddPage(name, text, true, i == 0)
	}
	a.updateTabBar()

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]1-5[-] or [yellow]Tab[-] switch   [yellow]q[-] quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.tabBar, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(status, 1, 0, false)

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			a.switchTo((a.current + 1) % len(tabNames))
			return nil
		case tcell.KeyRune:
			r := event.Rune()
			if r >= '1' && r <= '5' {
				a.switchTo(int(r - '1'))
				return nil
			}
			if r == 'q' {
				a.tviewApp.Stop()
				return nil
			}
		}
		return event
	})

	return a.tviewApp.SetRoot(layout, true).Run()
}

func (a *App) switchTo(index int) {
	a.current = index
	name := tabNames[index]

	a.pages.SwitchToPage(name)

	// The data preview re-reads on every activation; everything else is a
	// pure render over the immutable model and stays as built.
	if name == "Data" {
		if _, prim := a.pages.GetFrontPage(); prim != nil {
			if text, ok := prim.(*tview.TextView); ok {
				text.SetText(a.renderTab(index))
			}
		}
	}
	a.updateTabBar()
}

func (a *App) renderTab(index int) string {
	switch tabNames[index] {
	case "Structure":
		return renderStructure(view.StructureView(a.model))
	case "Schema":
		return renderSchema(view.SchemaView(a.model))
	case "Data":
		pv, err := view.DataPreview(a.reader, a.model.Overview.NumRows, view.DefaultPreviewRows)
		if err != nil {
			return renderError("data preview", err)
		}
		return renderData(pv)
	case "Metadata":
		return renderMetadata(view.MetadataView(a.model))
	case "Stats":
		return renderStats(view.StatsView(a.model))
	}
	return ""
}

func (a *App) updateTabBar() {
	var b strings.Builder
	for i, name := range tabNames {
		if i == a.current {
			fmt.Fprintf(&b, " [black:yellow] %d %s [-:-]", i+1, name)
		} else {
			fmt.Fprintf(&b, "  %d %s ", i+1, name)
		}
	}
	a.tabBar.SetText(b.String())
}

// RenderAll returns every tab's text keyed by tab name, for non-interactive
// output and tests.
func RenderAll(model *anatomy.Model, reader view.RowReader) map[string]string {
	a := &App{model: model, reader: reader}
	out := make(map[string]string, len(tabNames))
	for i, name := range tabNames {
		out[name] = a.renderTab(i)
	}
	return out
}

// RenderStructureText returns the structure diagram as plain text with the
// color tags stripped, for --no-tui output.
func RenderStructureText(model *anatomy.Model) string {
	return stripTags(renderStructure(view.StructureView(model)))
}

// stripTags removes tview color tags like [yellow] and [-].
func stripTags(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			if j := strings.IndexByte(s[i:], ']'); j > 0 && isColorTag(s[i+1:i+j]) {
				i += j
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isColorTag(body string) bool {
	if body == "" {
		return false
	}
	for _, r := range body {
		if !(r == '-' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '#') {
			return false
		}
	}
	return true
}
