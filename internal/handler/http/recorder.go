package http

import "net/http"

// statusRecorder captures the status code and body size of a response so the
// logging and metrics middleware can report them after the handler returns.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

// record wraps w for status and size capture. A handler that writes the body
// without calling WriteHeader is reported as 200, matching net/http.
func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
