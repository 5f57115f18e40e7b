package proto

import "fmt"

// ProtocolError is a veto raised by a per-interface RequestHandler: the
// request violates an interface-specific constraint the real protocol
// documents as a numbered error code. It is distinct from the routing
// failures in internal/dispatch.Error, which cover namespace resolution,
// not argument validity.
type ProtocolError struct {
	Interface string
	Code      uint32
	Message   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: protocol error %d: %s", e.Interface, e.Code, e.Message)
}

// WpViewportError is wp_viewport's protocol error enum.
type WpViewportError uint32

const (
	WpViewportErrorBadValue    WpViewportError = 0
	WpViewportErrorBadSize     WpViewportError = 1
	WpViewportErrorOutOfBuffer WpViewportError = 2
	WpViewportErrorNoSurface   WpViewportError = 3
)

func (e WpViewportError) String() string {
	switch e {
	case WpViewportErrorBadValue:
		return "bad_value"
	case WpViewportErrorBadSize:
		return "bad_size"
	case WpViewportErrorOutOfBuffer:
		return "out_of_buffer"
	case WpViewportErrorNoSurface:
		return "no_surface"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(e))
	}
}

// WpColorManagementSurfaceV1Error is wp_color_management_surface_v1's
// protocol error enum.
type WpColorManagementSurfaceV1Error uint32

const (
	WpColorManagementSurfaceV1ErrorRenderIntent     WpColorManagementSurfaceV1Error = 0
	WpColorManagementSurfaceV1ErrorImageDescription WpColorManagementSurfaceV1Error = 1
	WpColorManagementSurfaceV1ErrorInert            WpColorManagementSurfaceV1Error = 2
)

func (e WpColorManagementSurfaceV1Error) String() string {
	switch e {
	case WpColorManagementSurfaceV1ErrorRenderIntent:
		return "render_intent"
	case WpColorManagementSurfaceV1ErrorImageDescription:
		return "image_description"
	case WpColorManagementSurfaceV1ErrorInert:
		return "inert"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(e))
	}
}

// WpLinuxDrmSyncobjManagerV1Error is wp_linux_drm_syncobj_manager_v1's
// protocol error enum.
type WpLinuxDrmSyncobjManagerV1Error uint32

const (
	WpLinuxDrmSyncobjManagerV1ErrorSurfaceExists   WpLinuxDrmSyncobjManagerV1Error = 0
	WpLinuxDrmSyncobjManagerV1ErrorInvalidTimeline WpLinuxDrmSyncobjManagerV1Error = 1
)

func (e WpLinuxDrmSyncobjManagerV1Error) String() string {
	switch e {
	case WpLinuxDrmSyncobjManagerV1ErrorSurfaceExists:
		return "surface_exists"
	case WpLinuxDrmSyncobjManagerV1ErrorInvalidTimeline:
		return "invalid_timeline"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(e))
	}
}
