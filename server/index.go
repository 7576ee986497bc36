package server

import (
	"html/template"
	"net/http"
)

// The viewer is a single self-contained page: it shows the latest frame and
// swaps in each PNG pushed over the websocket.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>cellshade</title>
<style>
  body { background: #111; color: #ddd; font-family: monospace; text-align: center; }
  img { image-rendering: pixelated; border: 1px solid #333; margin-top: 1em; }
</style>
</head>
<body>
<div id="status">connecting&hellip;</div>
<img id="frame" src="/frame.png" alt="world frame">
<script>
  const status = document.getElementById("status");
  const frame = document.getElementById("frame");
  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  const ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.binaryType = "blob";
  ws.onopen = () => { status.textContent = "live"; };
  ws.onclose = () => { status.textContent = "disconnected"; };
  ws.onmessage = (ev) => {
    const url = URL.createObjectURL(ev.data);
    const old = frame.src;
    frame.src = url;
    if (old.startsWith("blob:")) URL.revokeObjectURL(old);
  };
</script>
</body>
</html>
`))

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Debug("index render failed", "err", err)
	}
}
