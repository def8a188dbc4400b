package platform

// AppName is reported to notification daemons as the sending application.
const AppName = "Fractal Explorer"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath points to an image shown alongside the notification when the
	// platform supports it.
	IconPath string
	// Timeout in milliseconds. Zero selects the platform default.
	Timeout int32
}

func (o Options) timeout() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return o.Timeout
}
