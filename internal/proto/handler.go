package proto

import "github.com/mahkoh/wl-proxy-sub012/internal/object"

// NewHandlerFor returns the per-interface request override for iface, or
// nil when the interface has none and should fall back to plain
// forwarding. Called once, when a new_id argument introduces a fresh
// object of that interface.
func NewHandlerFor(iface string) object.RequestHandler {
	switch iface {
	case "wp_viewport":
		return ViewportHandler{}
	case "wp_color_management_surface_v1":
		return ColorManagementSurfaceHandler{}
	default:
		return nil
	}
}
