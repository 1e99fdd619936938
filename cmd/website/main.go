package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/domenikresidence/website/cmd/website/internal/apartments"
	"github.com/domenikresidence/website/cmd/website/internal/cache"
	"github.com/domenikresidence/website/cmd/website/internal/configuration"
	"github.com/domenikresidence/website/cmd/website/internal/contactapi"
	"github.com/domenikresidence/website/cmd/website/internal/contactpage"
	"github.com/domenikresidence/website/cmd/website/internal/home"
	"github.com/domenikresidence/website/pkg/contact"
	"github.com/domenikresidence/website/pkg/services"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

var (
	Version string = "development"
	appName string = "domenikresidence"

	//go:embed app
	appFS embed.FS

	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	config configuration.Config

	/* Services */
	apartmentService    services.ApartmentServicer
	cacheCreatorService cache.CacheCreator
	enquiryService      services.EnquiryServicer
	mailService         services.MailServicer
	db                  *sqlz.DB
	renderer            rendering.TemplateRenderer

	/* Controllers */
	apartmentsController  apartments.ApartmentsController
	contactApiController  contactapi.ContactApiController
	contactPageController contactpage.ContactPageController
	homeController        home.HomeController
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("awsEndpointUrl", config.AwsEndpointUrl),
		slog.String("awsRegion", config.AwsRegion),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	migrateDatabase()

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	apartmentService = services.NewApartmentService(services.ApartmentServiceConfig{
		DB: db,
	})

	enquiryService = services.NewEnquiryService(services.EnquiryServiceConfig{
		DB: db,
	})

	mailService = services.NewMailService(services.MailServiceConfig{
		ApiKey:            config.EmailApiKey,
		FromName:          config.ContactFromName,
		FromEmail:         config.ContactFromEmail,
		NotificationEmail: config.NotificationEmail,
		SendTimeout:       time.Duration(config.EmailSendTimeout) * time.Second,
	})

	cacheCreatorService = cache.NewCacheCreatorService(cache.CacheCreatorConfig{
		ApartmentService: apartmentService,
		AwsBucket:        config.AwsBucket,
		AwsRegion:        config.AwsRegion,
		MaxCacheWorkers:  config.MaxCacheWorkers,
		MediaFolder:      config.MediaFolder,
		S3Client:         s3Client,
		ShutdownCtx:      shutdownCtx,
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		AwsBucket:   config.AwsBucket,
		MediaFolder: config.MediaFolder,
		Config:      &config,
		Renderer:    renderer,
		S3Client:    s3Client,
	})

	apartmentsController = apartments.NewApartmentsController(apartments.ApartmentsControllerConfig{
		ApartmentService: apartmentService,
		Bucket:           config.AwsBucket,
		MediaFolder:      config.MediaFolder,
		Renderer:         renderer,
		S3Client:         s3Client,
	})

	contactPageController = contactpage.NewContactPageController(contactpage.ContactPageControllerConfig{
		EnquiryService: enquiryService,
		MailService:    mailService,
		Renderer:       renderer,
	})

	contactApiController = contactapi.NewContactApiController(contactapi.ContactApiControllerConfig{
		EnquiryService: enquiryService,
		MailService:    mailService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage},
		{Path: "GET /project", HandlerFunc: homeController.ProjectPage},
		{Path: "GET /location", HandlerFunc: homeController.LocationPage},
		{Path: "GET /apartments", HandlerFunc: apartmentsController.ListPage},
		{Path: "GET /apartments/{slug}", HandlerFunc: apartmentsController.DetailPage},
		{Path: "GET /apartments/{slug}/gallery", HandlerFunc: apartmentsController.GalleryPartial},
		{Path: "GET /apartments/{slug}/floor-plan", HandlerFunc: apartmentsController.FloorPlanPartial},
		{Path: "GET /apartments/{slug}/floor-plan/download", HandlerFunc: apartmentsController.DownloadFloorPlan},
		{Path: "GET /contact", HandlerFunc: contactPageController.ContactPage},
		{Path: "POST /contact", HandlerFunc: contactPageController.SubmitAction},

		/*
		 * The relay checks the method itself so non-POST callers get a
		 * JSON 405 rather than the router's plain-text one.
		 */
		{Path: contact.RelayPath, HandlerFunc: contactApiController.Submit},
	}

	requestLogger := newRequestLoggerMiddleware()

	for index := range routes {
		routes[index].Middlewares = append(routes[index].Middlewares, requestLogger)
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Start the media cache creator job
	 */
	setupCacheCreator(quit)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupLogger(config *configuration.Config, version string) {
	var level slog.Level

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func migrateDatabase() {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		panic(err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			if b, err = fs.ReadFile(sqlMigrationsFs, filepath.Join("sql-migrations", d.Name())); err != nil {
				panic(err)
			}

			if err = runSqlScript(b); err != nil {
				if !isIgnorableError(err) {
					panic(err)
				}
			}
		}
	}
}

func runSqlScript(script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}

func setupCacheCreator(quit chan os.Signal) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		running := true

		runner := func() {
			defer func() {
				running = false
			}()

			cacheCreatorService.CreateCache()
			slog.Info("media cache creator finished.")
		}

		runner()

		for {
			select {
			case <-quit:
				return

			case <-ticker.C:
				if running {
					slog.Info("media cache creator already running. skipping...")
					continue
				}

				runner()
			}
		}
	}()
}
