package album

// Package album fetches the album document from the remote album source and
// the audio bytes of its tracks. Transport is go-axios over an explicitly
// constructed http.Client owned by the caller.
