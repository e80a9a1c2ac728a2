// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	academicsfeature "github.com/campushq/societyhub/internal/app/features/academics"
	analyticsfeature "github.com/campushq/societyhub/internal/app/features/analytics"
	announcementsfeature "github.com/campushq/societyhub/internal/app/features/announcements"
	attendancefeature "github.com/campushq/societyhub/internal/app/features/attendance"
	authgooglefeature "github.com/campushq/societyhub/internal/app/features/authgoogle"
	errorsfeature "github.com/campushq/societyhub/internal/app/features/errors"
	eventsfeature "github.com/campushq/societyhub/internal/app/features/events"
	feedbackfeature "github.com/campushq/societyhub/internal/app/features/feedback"
	healthfeature "github.com/campushq/societyhub/internal/app/features/health"
	leaderboardfeature "github.com/campushq/societyhub/internal/app/features/leaderboard"
	loginfeature "github.com/campushq/societyhub/internal/app/features/login"
	logoutfeature "github.com/campushq/societyhub/internal/app/features/logout"
	membersfeature "github.com/campushq/societyhub/internal/app/features/members"
	resourcesfeature "github.com/campushq/societyhub/internal/app/features/resources"
	tasksfeature "github.com/campushq/societyhub/internal/app/features/tasks"
	userinfofeature "github.com/campushq/societyhub/internal/app/features/userinfo"
	"github.com/campushq/societyhub/internal/app/scoring"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. SocietyHub initializes the session
// store, applies the session-loading middleware, and mounts the feature
// routers: auth, events (with nested attendance and feedback), tasks,
// announcements, resources, academics, members, leaderboard, and analytics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase
	errLog := errorsfeature.NewErrorLogger(logger)
	engine := scoring.NewEngine(userstore.New(db), logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in,
	// making the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	userinfoHandler := userinfofeature.NewHandler()
	r.Mount("/api/userinfo", userinfofeature.Routes(userinfoHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(db, errLog, logger)
	logoutHandler := logoutfeature.NewHandler(logger)
	googleHandler := authgooglefeature.NewHandler(db, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Route("/auth", func(r chi.Router) {
		loginHandler.MountRoutes(r)
		logoutHandler.MountRoutes(r)
		googleHandler.MountRoutes(r)
	})

	// Events, with attendance marking and feedback nested under the event.
	eventsHandler := eventsfeature.NewHandler(db, errLog, logger)
	attendanceHandler := attendancefeature.NewHandler(db, engine, errLog, logger)
	feedbackHandler := feedbackfeature.NewHandler(db, engine, errLog, logger)
	r.Route("/events", func(r chi.Router) {
		eventsHandler.MountRoutes(r)
		attendanceHandler.MountEventRoutes(r)
		feedbackHandler.MountEventRoutes(r)
	})
	r.Route("/attendance", attendanceHandler.MountRoutes)
	r.Route("/feedback", feedbackHandler.MountRoutes)

	// Tasks, with the completion route that awards points.
	tasksHandler := tasksfeature.NewHandler(db, engine, errLog, logger)
	r.Route("/tasks", tasksHandler.MountRoutes)

	announcementsHandler := announcementsfeature.NewHandler(db, errLog, logger)
	r.Route("/announcements", announcementsHandler.MountRoutes)

	resourcesHandler := resourcesfeature.NewHandler(db, errLog, logger)
	r.Route("/resources", resourcesHandler.MountRoutes)

	academicsHandler := academicsfeature.NewHandler(db, errLog, logger)
	r.Route("/academics", academicsHandler.MountRoutes)

	membersHandler := membersfeature.NewHandler(db, errLog, logger)
	r.Route("/members", membersHandler.MountRoutes)

	leaderboardHandler := leaderboardfeature.NewHandler(db, errLog, logger)
	r.Route("/leaderboard", leaderboardHandler.MountRoutes)

	analyticsHandler := analyticsfeature.NewHandler(db, errLog, logger)
	r.Route("/analytics", analyticsHandler.MountRoutes)

	return r, nil
}
