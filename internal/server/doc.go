// Package server implements the MCP (Model Context Protocol) server that edits
// a single image on behalf of a client.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Sources:
//   - image_load: Load an image file
//   - image_capture: Grab one webcam frame
//
// Operations:
//   - image_channel: Keep one color channel
//   - image_resize: Resize to an exact size
//   - image_brightness: Reduce brightness
//   - image_rectangle: Draw a rectangle outline
//   - image_revert: Discard all edits
//
// Inspection:
//   - image_display: Render the current image as PNG, scaled to fit
//   - image_info: Original and current dimensions
//   - image_sample_color: Color at a pixel
//
// # Image State
//
// The server holds one original image and the current edited image. Loading
// or capturing replaces both. Each operation produces a new current image
// from the raster chosen by the configured policy (see imaging.Policy).
//
// # Error Handling
//
//   - -32602 Invalid params: malformed or out-of-range arguments
//   - -32000 Tool execution failed: unreadable file, unavailable camera,
//     unknown tool
//
// A failed call never changes the image. Calling an operation before any
// image is loaded is not an error: the result reports "applied": false.
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
