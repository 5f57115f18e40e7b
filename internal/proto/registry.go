package proto

// schemas holds the signature catalogue for every interface the proxy
// understands well enough to decode and log arguments for. Interfaces not
// present here are still relayed byte-for-byte (the dispatcher falls back
// to raw word forwarding, see internal/dispatch), just without
// argument-level typed access or logging.
var schemas = map[string]Schema{
	"wl_display": {
		Interface: "wl_display",
		Version:   1,
		Requests: []MessageSig{
			{Name: "sync", Args: []ArgSpec{{Name: "callback", Kind: ArgNewID, Iface: "wl_callback"}}},
			{Name: "get_registry", Args: []ArgSpec{{Name: "registry", Kind: ArgNewID, Iface: "wl_registry"}}},
		},
		Events: []MessageSig{
			{Name: "error", Args: []ArgSpec{
				{Name: "object_id", Kind: ArgObject},
				{Name: "code", Kind: ArgUint},
				{Name: "message", Kind: ArgString},
			}},
			{Name: "delete_id", Args: []ArgSpec{{Name: "id", Kind: ArgUint}}},
		},
	},
	"wl_registry": {
		Interface: "wl_registry",
		Version:   1,
		Requests: []MessageSig{
			// bind's new_id is untyped on the wire: the interface string and
			// version words precede the id and name the type being bound.
			{Name: "bind", Args: []ArgSpec{
				{Name: "name", Kind: ArgUint},
				{Name: "interface", Kind: ArgString},
				{Name: "version", Kind: ArgUint},
				{Name: "id", Kind: ArgNewID},
			}},
		},
		Events: []MessageSig{
			{Name: "global", Args: []ArgSpec{
				{Name: "name", Kind: ArgUint},
				{Name: "interface", Kind: ArgString},
				{Name: "version", Kind: ArgUint},
			}},
			{Name: "global_remove", Args: []ArgSpec{{Name: "name", Kind: ArgUint}}},
		},
	},
	"wl_compositor": {
		Interface: "wl_compositor",
		Version:   6,
		Requests: []MessageSig{
			{Name: "create_surface", Args: []ArgSpec{{Name: "id", Kind: ArgNewID, Iface: "wl_surface"}}},
			{Name: "create_region", Args: []ArgSpec{{Name: "id", Kind: ArgNewID, Iface: "wl_region"}}},
		},
	},
	"wl_surface": {
		Interface: "wl_surface",
		Version:   6,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "attach", Args: []ArgSpec{
				{Name: "buffer", Kind: ArgObject, Nullable: true, Iface: "wl_buffer"},
				{Name: "x", Kind: ArgInt},
				{Name: "y", Kind: ArgInt},
			}},
			{Name: "damage", Args: []ArgSpec{
				{Name: "x", Kind: ArgInt}, {Name: "y", Kind: ArgInt},
				{Name: "width", Kind: ArgInt}, {Name: "height", Kind: ArgInt},
			}},
			{Name: "frame", Args: []ArgSpec{{Name: "callback", Kind: ArgNewID, Iface: "wl_callback"}}},
			{Name: "set_opaque_region", Args: []ArgSpec{{Name: "region", Kind: ArgObject, Nullable: true, Iface: "wl_region"}}},
			{Name: "set_input_region", Args: []ArgSpec{{Name: "region", Kind: ArgObject, Nullable: true, Iface: "wl_region"}}},
			{Name: "commit"},
			{Name: "set_buffer_transform", Args: []ArgSpec{{Name: "transform", Kind: ArgInt}}},
			{Name: "set_buffer_scale", Args: []ArgSpec{{Name: "scale", Kind: ArgInt}}},
			{Name: "damage_buffer", Args: []ArgSpec{
				{Name: "x", Kind: ArgInt}, {Name: "y", Kind: ArgInt},
				{Name: "width", Kind: ArgInt}, {Name: "height", Kind: ArgInt},
			}},
		},
		Events: []MessageSig{
			{Name: "enter", Args: []ArgSpec{{Name: "output", Kind: ArgObject, Iface: "wl_output"}}},
			{Name: "leave", Args: []ArgSpec{{Name: "output", Kind: ArgObject, Iface: "wl_output"}}},
		},
	},
	"wl_subcompositor": {
		Interface: "wl_subcompositor",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "get_subsurface", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wl_subsurface"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "parent", Kind: ArgObject, Iface: "wl_surface"},
			}},
		},
	},
	"wl_subsurface": {
		Interface: "wl_subsurface",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "set_position", Args: []ArgSpec{{Name: "x", Kind: ArgInt}, {Name: "y", Kind: ArgInt}}},
			{Name: "place_above", Args: []ArgSpec{{Name: "sibling", Kind: ArgObject, Iface: "wl_surface"}}},
			{Name: "place_below", Args: []ArgSpec{{Name: "sibling", Kind: ArgObject, Iface: "wl_surface"}}},
			{Name: "set_sync"},
			{Name: "set_desync"},
		},
	},
	"wp_viewporter": {
		Interface: "wp_viewporter",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "get_viewport", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wp_viewport"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
			}},
		},
	},
	"wp_viewport": {
		Interface: "wp_viewport",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "set_source", Args: []ArgSpec{
				{Name: "x", Kind: ArgFixed}, {Name: "y", Kind: ArgFixed},
				{Name: "width", Kind: ArgFixed}, {Name: "height", Kind: ArgFixed},
			}},
			{Name: "set_destination", Args: []ArgSpec{{Name: "width", Kind: ArgInt}, {Name: "height", Kind: ArgInt}}},
		},
	},
	"wl_data_device_manager": {
		Interface: "wl_data_device_manager",
		Version:   3,
		Requests: []MessageSig{
			{Name: "create_data_source", Args: []ArgSpec{{Name: "id", Kind: ArgNewID, Iface: "wl_data_source"}}},
			{Name: "get_data_device", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wl_data_device"},
				{Name: "seat", Kind: ArgObject, Iface: "wl_seat"},
			}},
		},
	},
	"wl_data_device": {
		Interface: "wl_data_device",
		Version:   3,
		Requests: []MessageSig{
			{Name: "start_drag", Args: []ArgSpec{
				{Name: "source", Kind: ArgObject, Nullable: true, Iface: "wl_data_source"},
				{Name: "origin", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "icon", Kind: ArgObject, Nullable: true, Iface: "wl_surface"},
				{Name: "serial", Kind: ArgUint},
			}},
			{Name: "set_selection", Args: []ArgSpec{
				{Name: "source", Kind: ArgObject, Nullable: true, Iface: "wl_data_source"},
				{Name: "serial", Kind: ArgUint},
			}},
			{Name: "release"},
		},
		Events: []MessageSig{
			{Name: "data_offer", Args: []ArgSpec{{Name: "id", Kind: ArgNewID, Iface: "wl_data_offer"}}},
			{Name: "enter", Args: []ArgSpec{
				{Name: "serial", Kind: ArgUint},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "x", Kind: ArgFixed}, {Name: "y", Kind: ArgFixed},
				{Name: "id", Kind: ArgObject, Nullable: true, Iface: "wl_data_offer"},
			}},
			{Name: "leave"},
			{Name: "motion", Args: []ArgSpec{
				{Name: "time", Kind: ArgUint}, {Name: "x", Kind: ArgFixed}, {Name: "y", Kind: ArgFixed},
			}},
			{Name: "drop"},
			{Name: "selection", Args: []ArgSpec{{Name: "id", Kind: ArgObject, Nullable: true, Iface: "wl_data_offer"}}},
		},
	},
	"zwp_pointer_constraints_v1": {
		Interface: "zwp_pointer_constraints_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "lock_pointer", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "zwp_locked_pointer_v1"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "pointer", Kind: ArgObject, Iface: "wl_pointer"},
				{Name: "region", Kind: ArgObject, Nullable: true, Iface: "wl_region"},
				{Name: "lifetime", Kind: ArgUint},
			}},
			{Name: "confine_pointer", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "zwp_confined_pointer_v1"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "pointer", Kind: ArgObject, Iface: "wl_pointer"},
				{Name: "region", Kind: ArgObject, Nullable: true, Iface: "wl_region"},
				{Name: "lifetime", Kind: ArgUint},
			}},
		},
	},
	"zwp_confined_pointer_v1": {
		Interface: "zwp_confined_pointer_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "set_region", Args: []ArgSpec{{Name: "region", Kind: ArgObject, Nullable: true, Iface: "wl_region"}}},
		},
		Events: []MessageSig{
			{Name: "confined"},
			{Name: "unconfined"},
		},
	},
	"zwp_pointer_gestures_v1": {
		Interface: "zwp_pointer_gestures_v1",
		Version:   3,
		Requests: []MessageSig{
			{Name: "get_swipe_gesture", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "zwp_pointer_gesture_swipe_v1"},
				{Name: "pointer", Kind: ArgObject, Iface: "wl_pointer"},
			}},
			{Name: "get_pinch_gesture", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "zwp_pointer_gesture_pinch_v1"},
				{Name: "pointer", Kind: ArgObject, Iface: "wl_pointer"},
			}},
			{Name: "release"},
			{Name: "get_hold_gesture", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "zwp_pointer_gesture_hold_v1"},
				{Name: "pointer", Kind: ArgObject, Iface: "wl_pointer"},
			}},
		},
	},
	"zwp_pointer_gesture_swipe_v1": {
		Interface: "zwp_pointer_gesture_swipe_v1",
		Version:   3,
		Requests: []MessageSig{
			{Name: "destroy"},
		},
		Events: []MessageSig{
			{Name: "begin", Args: []ArgSpec{
				{Name: "serial", Kind: ArgUint}, {Name: "time", Kind: ArgUint},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
				{Name: "fingers", Kind: ArgUint},
			}},
			{Name: "update", Args: []ArgSpec{
				{Name: "time", Kind: ArgUint}, {Name: "dx", Kind: ArgFixed}, {Name: "dy", Kind: ArgFixed},
			}},
			{Name: "end", Args: []ArgSpec{
				{Name: "serial", Kind: ArgUint}, {Name: "time", Kind: ArgUint}, {Name: "cancelled", Kind: ArgInt},
			}},
		},
	},
	"wp_color_manager_v1": {
		Interface: "wp_color_manager_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "get_output", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wp_color_management_output_v1"},
				{Name: "output", Kind: ArgObject, Iface: "wl_output"},
			}},
			{Name: "get_surface", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wp_color_management_surface_v1"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
			}},
		},
	},
	"wp_color_management_surface_v1": {
		Interface: "wp_color_management_surface_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "set_image_description", Args: []ArgSpec{
				{Name: "image_description", Kind: ArgObject, Iface: "wp_image_description_v1"},
				{Name: "render_intent", Kind: ArgUint},
			}},
			{Name: "unset_image_description"},
		},
		Events: []MessageSig{
			{Name: "preferred_changed", Args: []ArgSpec{{Name: "identity", Kind: ArgUint}}},
		},
	},
	"wp_linux_drm_syncobj_manager_v1": {
		Interface: "wp_linux_drm_syncobj_manager_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "get_surface", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wp_linux_drm_syncobj_surface_v1"},
				{Name: "surface", Kind: ArgObject, Iface: "wl_surface"},
			}},
			{Name: "import_timeline", Args: []ArgSpec{
				{Name: "id", Kind: ArgNewID, Iface: "wp_linux_drm_syncobj_timeline_v1"},
				{Name: "fd", Kind: ArgFd},
			}},
		},
	},
	"wp_linux_drm_syncobj_surface_v1": {
		Interface: "wp_linux_drm_syncobj_surface_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
			{Name: "set_acquire_point", Args: []ArgSpec{
				{Name: "timeline", Kind: ArgObject, Iface: "wp_linux_drm_syncobj_timeline_v1"},
				{Name: "point_hi", Kind: ArgUint},
				{Name: "point_lo", Kind: ArgUint},
			}},
			{Name: "set_release_point", Args: []ArgSpec{
				{Name: "timeline", Kind: ArgObject, Iface: "wp_linux_drm_syncobj_timeline_v1"},
				{Name: "point_hi", Kind: ArgUint},
				{Name: "point_lo", Kind: ArgUint},
			}},
		},
	},
	"wp_linux_drm_syncobj_timeline_v1": {
		Interface: "wp_linux_drm_syncobj_timeline_v1",
		Version:   1,
		Requests: []MessageSig{
			{Name: "destroy"},
		},
	},
}

// Lookup returns the schema for the named interface, and whether one is
// registered. Interfaces without a schema are relayed as raw words.
func Lookup(iface string) (Schema, bool) {
	s, ok := schemas[iface]
	return s, ok
}

// Interfaces returns every interface name with a registered schema.
func Interfaces() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	return names
}
