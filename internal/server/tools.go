package server

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
	"github.com/ironsheep/image-edit-mcp/internal/source"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Sources
		{
			Name: "image_load",
			Description: fmt.Sprintf("Load an image file and make it the image being edited. Replaces any previous image and its edits. Supported files: %s.",
				strings.Join(source.SupportedExtensions, " ")),
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_capture",
			Description: "Capture a single frame from the webcam and make it the image being edited. Fails without changing the image if no camera is available.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"device": map[string]interface{}{
						"type":        "integer",
						"description": "Camera index. Only 0 is supported.",
						"default":     source.DefaultDevice,
					},
				},
			},
		},

		// Operations
		{
			Name:        "image_channel",
			Description: "Keep one color channel and zero the other two. \"None\" keeps all channels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"R", "G", "B", "None"},
						"description": "Channel to keep",
					},
				},
				"required": []string{"channel"},
			},
		},
		{
			Name:        "image_resize",
			Description: fmt.Sprintf("Resize the image to an exact size (bilinear). Width and height must be between %d and %d.", imaging.MinDimension, imaging.MaxDimension),
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  intProp("New width in pixels"),
					"height": intProp("New height in pixels"),
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "image_brightness",
			Description: "Darken the image by reducing the HSV value channel. 0 leaves it unchanged, 100 makes it black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"percent": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     100,
						"description": "Brightness reduction in percent",
					},
				},
				"required": []string{"percent"},
			},
		},
		{
			Name:        "image_rectangle",
			Description: fmt.Sprintf("Draw a %d-pixel rectangle outline. Requires 0 <= x1 < x2 <= width and 0 <= y1 < y2 <= height.", imaging.OutlineWidth),
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x1": intProp("Left edge X coordinate (0-based)"),
					"y1": intProp("Top edge Y coordinate (0-based)"),
					"x2": intProp("Right edge X coordinate (exclusive)"),
					"y2": intProp("Bottom edge Y coordinate (exclusive)"),
				},
				"required": []string{"x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_revert",
			Description: "Discard all edits and return to the loaded image.",
			InputSchema: noArgs(),
		},

		// Inspection
		{
			Name:        "image_display",
			Description: "Render the current image as base64-encoded PNG, scaled down to fit the given area. Images are never enlarged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_width":  intProp("Available width in pixels. Defaults to the configured display width."),
					"max_height": intProp("Available height in pixels. Defaults to the configured display height."),
				},
			},
		},
		{
			Name:        "image_info",
			Description: "Report whether an image is loaded, the dimensions of the original and current image, and the edit policy.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of the current image at a pixel, as hex, RGB and HSV.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": intProp("X coordinate (0-based)"),
					"y": intProp("Y coordinate (0-based)"),
				},
				"required": []string{"x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
