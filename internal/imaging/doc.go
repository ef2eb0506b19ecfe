// Package imaging holds the editable image model: rasters, the operations that
// transform them, the original/current image state, and the display adapter.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. For regions, (x1,y1) is
// inclusive and (x2,y2) is exclusive.
//
// # Rasters
//
// A Raster is an opaque RGB pixel grid. Operations never modify their input:
// IsolateChannel, Resize, AdjustBrightness and DrawRectangle all return a new
// Raster. Component order is fixed to RGB inside this package; conversion to
// any other order happens only in Display.Render.
//
// # State
//
// State pairs the original raster with the current one. It is a value: every
// method returns an updated copy. Whether operations read the original or the
// current raster is decided once by the state's Policy and applies to every
// operation alike:
//
//	st := imaging.NewState(imaging.ComposeCurrent).Load(r)
//	st, err := st.Apply(imaging.ResizeOp{Width: 320, Height: 240})
//	st = st.Revert()
//
// # Errors
//
// Parameter problems wrap ErrInvalidParameter. Applying an operation before
// anything is loaded yields ErrNoImageLoaded, which callers are expected to
// treat as a no-op.
//
// # Thread Safety
//
// Rasters are never mutated after construction and may be read from any
// goroutine. State values are not synchronized; the caller owns them.
package imaging
