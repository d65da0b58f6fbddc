package httperr

// Response is the error envelope the middleware layer writes for recovered
// panics and deferred handler errors.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
