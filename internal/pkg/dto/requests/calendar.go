package requests

type GetMonthGrid struct {
	Year  int
	Month int
	// StudioID optionally scopes the availability overlay when an artist
	// browses a studio calendar. Owners always see their own studio.
	StudioID    string
	SessionData string
}
