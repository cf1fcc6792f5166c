package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/averymorin/portfolio/internal/content"
	"github.com/averymorin/portfolio/internal/nav"
	"github.com/averymorin/portfolio/internal/typewriter"
)

// defaultSection is the nav section highlighted before any scroll activity
const defaultSection = "home"

func main() {
	initDB()
	initAdminToken()

	retention := startRetentionJob()
	defer retention.Stop()

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "content"
	}
	store, err := content.Open(contentDir)
	if err != nil {
		log.Fatal("Failed to load site content:", err)
	}
	if err := store.Watch(context.Background()); err != nil {
		log.Printf("Content hot reload disabled: %v", err)
	}

	r := buildRouter(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func buildRouter(store *content.Store) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		theme, err := c.Cookie("theme")
		if err != nil || theme == "" {
			theme = "light"
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"site":   store.Site(),
			"theme":  theme,
			"active": defaultSection,
		})
	})

	// Project grid partial, optionally filtered by ?q=
	r.GET("/projects", func(c *gin.Context) {
		query := c.Query("q")
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"projects": store.SearchProjects(query),
			"query":    query,
		})
	})

	// Project detail modal partial
	r.GET("/projects/:slug", func(c *gin.Context) {
		project, ok := store.Project(c.Param("slug"))
		if !ok {
			c.HTML(http.StatusNotFound, "project-missing.html", gin.H{})
			return
		}
		c.HTML(http.StatusOK, "project-modal.html", gin.H{
			"project": project,
		})
	})

	// Work experience content
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"jobs": store.Site().Experience,
		})
	})

	// Education content
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"entries": store.Site().Education,
		})
	})

	// Certifications content
	r.GET("/certifications-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "certifications-content.html", gin.H{
			"certs": store.Site().Certifications,
		})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", handleContact)

	// Dark mode flag lives in a cookie so it survives page loads
	r.POST("/theme", handleThemeToggle)

	// Scroll-spy: the browser posts IntersectionObserver batches here
	r.POST("/nav/active", handleNavActive)
	r.POST("/nav/scroll", handleNavScroll)

	// Hero typewriter animation streamed over SSE
	r.GET("/hero/typewriter", handleTypewriter(store))

	setupAdminRoutes(r)

	return r
}

// handleNavActive resolves which nav item is highlighted from a batch of
// intersection observations. The previous id rides on the query string so a
// malformed body still degrades to "no change" instead of losing state.
func handleNavActive(c *gin.Context) {
	previous := c.Query("previous")
	if previous == "" {
		previous = defaultSection
	}

	active := previous
	var entries []*nav.Observation
	if err := c.ShouldBindJSON(&entries); err == nil {
		active = nav.Resolve(entries, previous)
	}

	renderNav(c, active)
}

// Scroll-position fallback for browsers without IntersectionObserver: the
// client reports section geometry and the current viewport band instead.
func handleNavScroll(c *gin.Context) {
	previous := c.Query("previous")
	if previous == "" {
		previous = defaultSection
	}

	active := previous
	var report struct {
		Sections   []nav.SectionBounds `json:"sections"`
		ViewTop    float64             `json:"viewTop"`
		ViewHeight float64             `json:"viewHeight"`
	}
	if err := c.ShouldBindJSON(&report); err == nil {
		active = nav.ResolveFromScroll(report.Sections, report.ViewTop, report.ViewHeight, previous)
	}

	renderNav(c, active)
}

func renderNav(c *gin.Context, active string) {
	c.Header("X-Active-Section", active)
	c.HTML(http.StatusOK, "nav.html", gin.H{
		"active": active,
	})
}

// Flip the theme cookie and return the refreshed toggle button
func handleThemeToggle(c *gin.Context) {
	theme, _ := c.Cookie("theme")
	next := "dark"
	if theme == "dark" {
		next = "light"
	}
	c.SetCookie("theme", next, 3600*24*365, "/", "", false, false)
	c.HTML(http.StatusOK, "theme-toggle.html", gin.H{
		"theme": next,
	})
}

// handleTypewriter streams hero headline frames over SSE. Each connection
// drives its own machine off a real ticker; only changed frames are sent.
func handleTypewriter(store *content.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := typewriter.New(store.Site().Hero.Phrases)
		ticker := time.NewTicker(45 * time.Millisecond)
		defer ticker.Stop()

		last := time.Now()
		previous := ""
		first := true
		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case now := <-ticker.C:
				m.Advance(now.Sub(last))
				last = now
				if text := m.Text(); first || text != previous {
					c.SSEvent("frame", text)
					previous = text
					first = false
				}
				return true
			}
		})
	}
}
