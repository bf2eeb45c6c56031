package http

import (
	"errors"
	"mime/multipart"
	"net"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/middleware"
)

// maxUploadSize caps every form body, uploads included.
const maxUploadSize = 10 << 20

func principalFrom(r *http.Request) user.User {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	return principal
}

// parseForm reads url-encoded and multipart bodies alike.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadSize)
	}
	return r.ParseForm()
}

// formFile returns (nil, nil, nil) when the field was left empty.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil, nil
	}
	return file, header, nil
}

// clientIP strips the port chi's RealIP leaves on RemoteAddr when no proxy header is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if len(host) > 45 {
		host = host[:45]
	}
	return host
}

func trackingFrom(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	}
}

// formCheckbox is true when an HTML checkbox was ticked.
func formCheckbox(r *http.Request, name string) bool {
	switch strings.ToLower(r.PostFormValue(name)) {
	case "on", "true", "1":
		return true
	}
	return false
}
