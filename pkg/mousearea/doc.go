// Package mousearea provides MouseArea, a widget whose content is rebuilt from
// the pointer's hover and press state.
//
// A MouseArea owns no visuals. It asks a ContentBuilder for a subtree given
// the current MouseState, caches that subtree together with the state that
// produced it, and forwards every tree operation (layout, draw, events,
// cursor queries, semantics walks, overlays) to the cached subtree.
//
// # Usage
//
//	item := mousearea.NewFunc(func(s mousearea.MouseState) core.Widget {
//	    if s.Hovered {
//	        return widgets.RowOf(
//	            widgets.Text{Content: "Buy milk"},
//	            widgets.Button{Label: "Done", OnPress: doneMsg},
//	        )
//	    }
//	    return widgets.Text{Content: "Buy milk"}
//	})
//
// Builders must be pure: they may run before any pointer state is known and
// their result may be discarded.
//
// # State Rules
//
// Hover is recomputed from the node's assigned bounds on every pointer event.
// A press starts only while hovered (primary button or touch). A release
// always clears the press, wherever the pointer is. Leaving the bounds
// without releasing keeps the press.
//
// When a pointer event changes the cached content, MouseArea calls
// Shell.InvalidateLayout exactly once so the host re-measures before the next
// draw. Events are forwarded to the content afterwards, and MouseArea itself
// never captures them.
package mousearea
