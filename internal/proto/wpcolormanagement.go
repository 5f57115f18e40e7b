package proto

// colorManagementOpSetImageDescription is set_image_description's opcode
// in the registered wp_color_management_surface_v1 schema.
const colorManagementOpSetImageDescription = 1

// maxKnownRenderIntent is the highest rendering intent value defined by
// the color-management-v1 protocol (perceptual, relative, saturation,
// absolute, relative_bpc).
const maxKnownRenderIntent = 4

// ColorManagementSurfaceHandler validates the render intent argument of
// set_image_description against the intents the protocol defines, raising
// render_intent instead of relaying a value no real compositor advertised.
type ColorManagementSurfaceHandler struct{}

func (ColorManagementSurfaceHandler) HandleRequest(opcode uint16, words []uint32) error {
	if opcode != colorManagementOpSetImageDescription || len(words) < 2 {
		return nil
	}
	renderIntent := words[1]
	if renderIntent > maxKnownRenderIntent {
		return &ProtocolError{
			Interface: "wp_color_management_surface_v1",
			Code:      uint32(WpColorManagementSurfaceV1ErrorRenderIntent),
			Message:   "unsupported rendering intent",
		}
	}
	return nil
}
