// Package testing provides a widget testing harness.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestTodoRow(t *testing.T) {
//	    tester := matest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(todoRow("Buy milk"))
//
//	    tester.MoveTo(graphics.Offset{X: 10, Y: 5})
//	    tester.Pump()
//
//	    if !tester.Find(matest.ByText("Done")).Exists() {
//	        t.Error("expected the Done button while hovered")
//	    }
//	}
//
// Events go through the same engine.Runtime the window host uses. Pump paints
// a frame into a recorder, so DrawnTexts and CaptureSnapshot reflect the last
// pumped frame.
//
// # Snapshot Testing
//
// Capture and compare layout and paint snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/todo_row.snapshot.json")
//
// Update snapshots with:
//
//	MOUSEAREA_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import matest "github.com/go-drift/mousearea/pkg/testing"
package testing
