package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kgnconstruction/kgnbackend/catalog"
	"github.com/kgnconstruction/kgnbackend/config"
	"github.com/kgnconstruction/kgnbackend/forms"
	"github.com/kgnconstruction/kgnbackend/middleware"
)

// Deps is what the routes need from main.
type Deps struct {
	Config   *config.Config
	Registry *forms.Registry
	Catalog  *catalog.Catalog
	Leads    LeadLister
}

// RegisterRoutes mounts the site, the form API, the catalog API and the admin inbox.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", Health())

	r.GET("/api/projects", GetProjects(d.Catalog))
	r.GET("/api/projects/:slug", GetProject(d.Catalog))
	r.GET("/api/ready-houses", GetReadyHouses(d.Catalog))
	r.GET("/api/ready-houses/:slug", GetReadyHouse(d.Catalog))

	site := r.Group("/")
	site.Use(middleware.FormSession(d.Config.SessionCookieSecure))
	{
		site.GET("/", Index(d.Registry, d.Catalog))

		site.GET("/quote", ShowForm(d.Registry, forms.QuoteForm, "/quote"))
		site.POST("/quote", SubmitForm(d.Registry, forms.QuoteForm, BindQuote, "/quote"))
		site.POST("/quote/another", SubmitAnother(d.Registry, forms.QuoteForm, "/quote"))

		site.GET("/custom-project", ShowForm(d.Registry, forms.CustomProjectForm, "/custom-project"))
		site.POST("/custom-project", SubmitForm(d.Registry, forms.CustomProjectForm, BindCustomProject, "/custom-project"))
		site.POST("/custom-project/another", SubmitAnother(d.Registry, forms.CustomProjectForm, "/custom-project"))

		site.POST("/contact", SubmitForm(d.Registry, forms.ContactForm, BindContact, "/#contact"))
	}

	api := r.Group("/api")
	api.Use(middleware.FormSession(d.Config.SessionCookieSecure))
	{
		mountFormAPI(api, "/quotes", d.Registry, forms.QuoteForm, BindQuote)
		mountFormAPI(api, "/custom-projects", d.Registry, forms.CustomProjectForm, BindCustomProject)
		mountFormAPI(api, "/contact", d.Registry, forms.ContactForm, BindContact)
	}

	if d.Config.AdminEnabled() {
		r.POST("/auth/login", Login(d.Config))

		admin := r.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
		{
			admin.GET("/leads/:table", GetLeads(d.Leads))
		}
	}
}

func mountFormAPI(g *gin.RouterGroup, path string, reg *forms.Registry, def *forms.Definition, bind Binder) {
	g.GET(path, GetFormState(reg, def))
	g.POST(path, CreateSubmission(reg, def, bind))
	g.POST(path+"/another", ResetSubmission(reg, def))
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
