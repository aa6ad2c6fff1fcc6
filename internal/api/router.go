package api

import (
	"alumni_portal/internal/config"
	"alumni_portal/internal/middleware"
	"alumni_portal/internal/oauth"
	"alumni_portal/internal/service"
	"alumni_portal/internal/session"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Sessions *session.Store
	Provider oauth.Provider
	Events   *service.EventService // optional, built from DB when nil
}

// NewRouter registers every route of the portal. extra middleware runs before the session loader.
func NewRouter(d Deps, extra ...gin.HandlerFunc) *gin.Engine {
	admins := service.NewAdminService(d.DB)
	alumni := service.NewAlumniService(d.DB)
	directory := service.NewDirectoryService(d.DB)
	community := service.NewCommunityService(d.DB)
	donations := service.NewDonationService(d.DB)
	events := d.Events
	if events == nil {
		events = service.NewEventService(d.DB)
	}
	secure := d.Config.IsProd

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(extra...)
	r.Use(middleware.CORS(d.Config.CORSOrigins), middleware.SessionLoader(d.Sessions))

	// Open routes
	r.GET("/", HomeHandler())
	r.GET("/register", RegisterPageHandler())
	r.POST("/register", RegisterHandler(alumni))
	r.GET("/login", LoginHandler(d.Provider, d.Redis))
	r.GET("/authorize", AuthorizeHandler(d.Provider, admins, d.Sessions, d.Redis, secure))
	r.GET("/logout", LogoutHandler(d.Sessions, secure))
	r.POST("/donation_success", DonationSuccessHandler(donations)) // Payment widget callback

	// Session-gated routes
	gated := r.Group("/")
	gated.Use(middleware.RequireSession())

	// Role-check hook, only enforced when configured
	privileged := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if d.Config.EnforceAdmin {
			return []gin.HandlerFunc{middleware.AdminOnlyMiddleware(d.DB), h}
		}
		return []gin.HandlerFunc{h}
	}

	gated.GET("/dashboard", DashboardHandler(events, directory))
	gated.GET("/user_dashboard", StaticPageHandler("user_dashboard"))
	gated.GET("/mentorship", StaticPageHandler("mentorship"))
	gated.GET("/donations", StaticPageHandler("donations"))
	gated.GET("/alumni_directory", DirectoryHandler(directory))
	gated.GET("/alumni_directory/export", privileged(ExportHandler(directory))...)
	gated.GET("/events", EventsHandler(events))
	gated.POST("/create_event", privileged(CreateEventHandler(events))...)
	gated.GET("/comm", CommunityHandler(community))
	gated.POST("/post", CreatePostHandler(community))
	gated.POST("/reply", ReplyHandler(community))
	gated.POST("/like", LikeHandler(community))
	gated.POST("/post/delete", middleware.AdminOnlyMiddleware(d.DB), DeletePostHandler(community))

	return r
}
