package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kgnconstruction/kgnbackend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFormSessionIssuesCookie(t *testing.T) {
	r := gin.New()
	r.Use(FormSession(true))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie {
		t.Fatalf("expected a session cookie, got %#v", cookies)
	}
	c := cookies[0]
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes %#v", c)
	}
	if rec.Body.String() != c.Value {
		t.Fatalf("handler saw %q, cookie is %q", rec.Body.String(), c.Value)
	}
}

func TestFormSessionReusesValidCookie(t *testing.T) {
	r := gin.New()
	r.Use(FormSession(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != id {
		t.Fatalf("expected existing id %q, got %q", id, rec.Body.String())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no new cookie expected")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "../../etc"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() == "../../etc" {
		t.Fatalf("malformed cookie must be replaced")
	}
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthMiddleware("secret"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("email"))
	})

	admin, _ := utils.GenerateAccessToken("admin@kgn.example", "ADMIN", "secret", time.Minute)
	viewer, _ := utils.GenerateAccessToken("viewer@kgn.example", "VIEWER", "secret", time.Minute)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
