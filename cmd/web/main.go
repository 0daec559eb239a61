package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aurelia-studios/aurelia-web/internal/banner"
	"github.com/aurelia-studios/aurelia-web/internal/cms"
	"github.com/aurelia-studios/aurelia-web/internal/config"
	mw "github.com/aurelia-studios/aurelia-web/internal/middleware"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	devMode      bool
	tmplCache    *template.Template

	siteCfg     config.Config
	appLogger   *zap.Logger
	cmsClient   *cms.Client
	bannerStore *banner.Store
)

func main() {
	var (
		addr     string
		tmplPath string
		pubPath  string
		sitePath string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides AURELIA_WEB_PORT)")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&sitePath, "site", "site.yaml", "site settings file")
	flag.Parse()

	log, err := mw.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	appLogger = log

	cfg, err := config.Load(sitePath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	siteCfg = cfg
	if addr == "" {
		addr = cfg.Addr
	}
	templatesDir = tmplPath
	publicDir = pubPath
	devMode = cfg.Dev

	cmsClient = cms.NewClient(cfg.APIBase, log.Named("cms"))
	bannerStore = banner.NewStore(bannerSigningKey(log), log.Named("banner"))

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			log.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode), zap.String("api_base", cfg.APIBase))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("listen", zap.Error(err))
	}
}

func newRouter(log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.Assets(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	// Pages
	r.Get("/", HomeHandler)
	r.Get("/gallery", GalleryHandler)
	r.Get("/portfolio", PortfolioHandler)
	r.Get("/portfolio/{slug}", PortfolioAlbumHandler)
	r.Get("/vendors", VendorsHandler)
	r.Get("/vendors/{slug}", VendorProfileHandler)
	r.Get("/blog", BlogHandler)
	r.Get("/blog/{slug}", BlogPostHandler)
	r.Get("/contact", ContactHandler)

	// Fragments
	r.Get("/frag/faq/{id}", FAQToggleFrag)
	r.Get("/frag/lightbox", LightboxOpenFrag)
	r.Get("/frag/lightbox/next", LightboxNextFrag)
	r.Get("/frag/lightbox/prev", LightboxPrevFrag)
	r.Get("/frag/lightbox/swipe", LightboxSwipeFrag)
	r.Get("/frag/lightbox/close", LightboxCloseFrag)
	r.Get("/frag/search", SearchOverlayFrag)
	r.Get("/frag/search/results", SearchResultsFrag)
	r.Get("/frag/vendors", VendorListFrag)
	r.Get("/frag/popup", PopupFrag)
	r.Post("/frag/popup", PopupSubmitHandler)
	r.Get("/frag/pwa-banner", BannerFrag)
	r.Post("/frag/pwa-banner/dismiss", BannerDismissHandler)
	r.Post("/frag/pwa-banner/accepted", BannerAcceptedHandler)
	r.Post("/frag/pwa-banner/installed", BannerInstalledHandler)

	// Form posts
	r.Post("/inquiry", InquirySubmitHandler)

	return r
}

// bannerSigningKey resolves the cookie signing key, generating an ephemeral
// one when unset (dev only).
func bannerSigningKey(log *zap.Logger) []byte {
	if key := os.Getenv("AURELIA_WEB_COOKIE_SIGNING_KEY"); key != "" {
		return []byte(key)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Warn("cookie signing key generation failed, using static dev key", zap.Error(err))
		return []byte("insecure-dev-key-set-AURELIA_WEB_COOKIE_SIGNING_KEY")
	}
	log.Info("using ephemeral cookie signing key; set AURELIA_WEB_COOKIE_SIGNING_KEY in production")
	return key
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func currentTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// render executes a full page template; pages share the layout partials.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a named fragment template.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	render(w, r, name, data)
}
