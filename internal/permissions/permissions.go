// Package permissions holds the access policies applied to the API. Every
// predicate is pure: it looks only at the method, the requester and, for
// object checks, the owner of the target.
package permissions

import (
	"net/http"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

// Requester is the identity behind the current request. The zero value is
// an anonymous requester.
type Requester struct {
	UserID uint
	Role   models.Role
}

func Anonymous() Requester {
	return Requester{}
}

func (r Requester) Authenticated() bool {
	return r.UserID != 0
}

func (r Requester) IsAdmin() bool {
	return r.Authenticated() && r.Role.IsAdmin()
}

// Policy decides whether a requester may perform method on an endpoint.
type Policy func(method string, r Requester) bool

func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// AdminOrReadOnly lets anyone read and only admins write.
func AdminOrReadOnly(method string, r Requester) bool {
	if IsSafeMethod(method) {
		return true
	}
	return r.IsAdmin()
}

// AuthorOrReadOnly is the endpoint half of the author policy: writes need an
// authenticated requester, ownership is checked per object.
func AuthorOrReadOnly(method string, r Requester) bool {
	return IsSafeMethod(method) || r.Authenticated()
}

// AuthorOrReadOnlyObject is the object half of the author policy.
func AuthorOrReadOnlyObject(method string, r Requester, authorID uint) bool {
	if IsSafeMethod(method) {
		return true
	}
	return r.Authenticated() && r.UserID == authorID
}

// IsAuthenticated allows only authenticated requesters, whatever the method.
func IsAuthenticated(_ string, r Requester) bool {
	return r.Authenticated()
}
