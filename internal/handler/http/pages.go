package http

import (
	"net/http"
)

const forbiddenPage = `<!DOCTYPE html>
<html lang="id">
<head><meta charset="utf-8"><title>403 - Akses Ditolak</title></head>
<body>
<h1>403</h1>
<p>Anda tidak memiliki akses ke halaman ini.</p>
<p><a href="/login">Kembali ke halaman login</a></p>
</body>
</html>
`

// Forbidden handles GET /forbidden, the target of the route guard.
func Forbidden(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(forbiddenPage))
}
