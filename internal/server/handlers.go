package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
	"github.com/ironsheep/image-edit-mcp/internal/source"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// EditResult reports the outcome of a tool that changes or shows the image.
//
// Applied is false when the tool had nothing to act on because no image is
// loaded; that case is not an error.
type EditResult struct {
	Operation string `json:"operation"`
	Applied   bool   `json:"applied"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Message   string `json:"message,omitempty"`
}

// DisplayResult carries the current image rendered for display.
type DisplayResult struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	SourceWidth    int     `json:"source_width"`
	SourceHeight   int     `json:"source_height"`
	Scale          float64 `json:"scale"`
	ImageBase64    string  `json:"image_base64"`
	MimeType       string  `json:"mime_type"`
	ComponentOrder string  `json:"component_order"`
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InfoResult describes the image state.
type InfoResult struct {
	Loaded   bool        `json:"loaded"`
	Policy   string      `json:"policy"`
	Original *Dimensions `json:"original,omitempty"`
	Current  *Dimensions `json:"current,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Rejected parameters return a JSON-RPC error with code -32602; file and
// camera failures return -32000. In both cases the image is left unchanged.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug {
		log.Printf("tools/call %s %s", params.Name, string(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		if errors.Is(err, imaging.ErrInvalidParameter) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Sources
	case "image_load":
		return s.handleImageLoad(args)
	case "image_capture":
		return s.handleImageCapture(args)

	// Operations
	case "image_channel":
		return s.handleImageChannel(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_brightness":
		return s.handleImageBrightness(args)
	case "image_rectangle":
		return s.handleImageRectangle(args)
	case "image_revert":
		return s.handleImageRevert()

	// Inspection
	case "image_display":
		return s.handleImageDisplay(args)
	case "image_info":
		return s.handleImageInfo()
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments leave v untouched;
// malformed ones (wrong types, bad JSON) are invalid parameters.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", imaging.ErrInvalidParameter, err)
	}
	return nil
}

func missingArg(name string) error {
	return fmt.Errorf("%w: %s is required", imaging.ErrInvalidParameter, name)
}

// requireInts reports the first missing argument in sorted name order.
func requireInts(args map[string]*int) error {
	names := make([]string, 0, len(args))
	for name, v := range args {
		if v == nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return missingArg(names[0])
}

func notLoaded(operation string) *EditResult {
	return &EditResult{Operation: operation, Applied: false, Message: imaging.ErrNoImageLoaded.Error()}
}

// applyEdit runs op against the state and keeps the result only on success.
func (s *Server) applyEdit(op imaging.Operation) (interface{}, error) {
	next, err := s.state.Apply(op)
	if errors.Is(err, imaging.ErrNoImageLoaded) {
		return notLoaded(op.Name()), nil
	}
	if err != nil {
		return nil, err
	}
	s.state = next

	if s.cfg.Debug {
		log.Printf("applied %s", imaging.Describe(op))
	}
	cur, _ := s.state.Current()
	return &EditResult{
		Operation: op.Name(),
		Applied:   true,
		Width:     cur.Width(),
		Height:    cur.Height(),
	}, nil
}

func (s *Server) loaded(operation string, r *imaging.Raster) *EditResult {
	s.state = s.state.Load(r)
	return &EditResult{
		Operation: operation,
		Applied:   true,
		Width:     r.Width(),
		Height:    r.Height(),
	}
}

// === Source Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, err := source.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}
	return s.loaded("load", r), nil
}

type imageCaptureArgs struct {
	Device int `json:"device"`
}

func (s *Server) handleImageCapture(args json.RawMessage) (interface{}, error) {
	a := imageCaptureArgs{Device: source.DefaultDevice}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, err := source.Capture(s.grabber, a.Device)
	if err != nil {
		return nil, err
	}
	return s.loaded("capture", r), nil
}

// === Operation Handlers ===

type imageChannelArgs struct {
	Channel *string `json:"channel"`
}

func (s *Server) handleImageChannel(args json.RawMessage) (interface{}, error) {
	var a imageChannelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Channel == nil {
		return nil, missingArg("channel")
	}
	c, err := imaging.ParseChannel(*a.Channel)
	if err != nil {
		return nil, err
	}
	return s.applyEdit(imaging.ChannelOp{Channel: c})
}

type imageResizeArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	// Bounds are checked before the state so a bad size is reported even
	// with no image loaded.
	if err := imaging.ValidateDimensions(a.Width, a.Height); err != nil {
		return nil, err
	}
	return s.applyEdit(imaging.ResizeOp{Width: a.Width, Height: a.Height})
}

type imageBrightnessArgs struct {
	Percent *int `json:"percent"`
}

func (s *Server) handleImageBrightness(args json.RawMessage) (interface{}, error) {
	var a imageBrightnessArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Percent == nil {
		return nil, missingArg("percent")
	}
	if *a.Percent < 0 || *a.Percent > 100 {
		return nil, fmt.Errorf("%w: brightness %d outside 0-100", imaging.ErrInvalidParameter, *a.Percent)
	}
	return s.applyEdit(imaging.BrightnessOp{Percent: *a.Percent})
}

type imageRectangleArgs struct {
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
	X2 *int `json:"x2"`
	Y2 *int `json:"y2"`
}

func (s *Server) handleImageRectangle(args json.RawMessage) (interface{}, error) {
	var a imageRectangleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requireInts(map[string]*int{"x1": a.X1, "y1": a.Y1, "x2": a.X2, "y2": a.Y2}); err != nil {
		return nil, err
	}
	return s.applyEdit(imaging.RectangleOp{
		X1:    *a.X1,
		Y1:    *a.Y1,
		X2:    *a.X2,
		Y2:    *a.Y2,
		Color: s.cfg.RectColor,
	})
}

func (s *Server) handleImageRevert() (interface{}, error) {
	if !s.state.Loaded() {
		return notLoaded("revert"), nil
	}
	s.state = s.state.Revert()
	cur, _ := s.state.Current()
	return &EditResult{
		Operation: "revert",
		Applied:   true,
		Width:     cur.Width(),
		Height:    cur.Height(),
	}, nil
}

// === Inspection Handlers ===

type imageDisplayArgs struct {
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

func (s *Server) handleImageDisplay(args json.RawMessage) (interface{}, error) {
	var a imageDisplayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = s.cfg.DisplayWidth
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = s.cfg.DisplayHeight
	}

	cur, ok := s.state.Current()
	if !ok {
		return notLoaded("display"), nil
	}

	bm, err := s.display.Render(cur, a.MaxWidth, a.MaxHeight)
	if err != nil {
		return nil, err
	}
	data, err := bm.PNG()
	if err != nil {
		return nil, err
	}

	return &DisplayResult{
		Width:          bm.Width,
		Height:         bm.Height,
		SourceWidth:    cur.Width(),
		SourceHeight:   cur.Height(),
		Scale:          imaging.FitScale(cur.Width(), cur.Height(), a.MaxWidth, a.MaxHeight),
		ImageBase64:    base64.StdEncoding.EncodeToString(data),
		MimeType:       "image/png",
		ComponentOrder: bm.Order.String(),
	}, nil
}

func (s *Server) handleImageInfo() (interface{}, error) {
	info := &InfoResult{
		Loaded: s.state.Loaded(),
		Policy: s.state.Policy().String(),
	}
	if r, ok := s.state.Original(); ok {
		info.Original = &Dimensions{Width: r.Width(), Height: r.Height()}
	}
	if r, ok := s.state.Current(); ok {
		info.Current = &Dimensions{Width: r.Width(), Height: r.Height()}
	}
	return info, nil
}

type imageSampleColorArgs struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requireInts(map[string]*int{"x": a.X, "y": a.Y}); err != nil {
		return nil, err
	}
	cur, ok := s.state.Current()
	if !ok {
		return notLoaded("sample_color"), nil
	}
	return imaging.SampleColor(cur, *a.X, *a.Y)
}
