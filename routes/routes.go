package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired services the handlers need.
type Deps struct {
	Analysis *services.AnalysisService
	Usage    *services.UsageService
	Diary    *services.DiaryService
	Goals    *services.GoalService
	Tracking *services.TrackingService
	Reports  *services.ReportService
	Chat     *services.ChatService
	Subs     *services.SubscriptionService
	Push     *services.PushService
	RT       *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	analysisCtl := controllers.NewAnalysisController(d.Analysis, d.Usage)
	diaryCtl := controllers.NewDiaryController(d.Diary, d.Analysis, d.Goals, d.RT)
	goalCtl := controllers.NewGoalController(d.Goals)
	trackingCtl := controllers.NewTrackingController(d.Tracking)
	reportCtl := controllers.NewReportController(d.Reports)
	chatCtl := controllers.NewChatController(d.Chat)
	subsCtl := controllers.NewSubscriptionController(d.Subs, d.Usage)
	webhookCtl := controllers.NewWebhookController(d.Subs)
	realtimeCtl := controllers.NewRealtimeController(d.RT)

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
	r.POST("/webhooks/stripe", webhookCtl.Stripe)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}
	if d.Push != nil {
		deviceCtl := controllers.NewDeviceController(d.Push)
		user.POST("/devices", deviceCtl.Register)
	}

	analysis := r.Group("/analysis")
	analysis.Use(middlewares.AuthMiddleware())
	{
		analysis.POST("/image", analysisCtl.AnalyzeImage)
		analysis.POST("/text", analysisCtl.AnalyzeText)
		analysis.POST("/rescale", analysisCtl.Rescale)
		analysis.POST("/nutrition", analysisCtl.Nutrition)
		analysis.GET("/usage", analysisCtl.UsageStatus)
	}

	diary := r.Group("/diary")
	diary.Use(middlewares.AuthMiddleware())
	{
		diary.POST("/entries", diaryCtl.Confirm)
		diary.GET("/entries", diaryCtl.ListByDate)
		diary.GET("/range", diaryCtl.ListByRange)
		diary.PUT("/entries/:id", diaryCtl.UpdateEntry)
		diary.DELETE("/entries/:id", diaryCtl.DeleteEntry)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", goalCtl.Get)
		goals.PUT("", goalCtl.Upsert)
		goals.GET("/progress", goalCtl.Progress)
	}

	tracking := r.Group("/tracking")
	tracking.Use(middlewares.AuthMiddleware())
	{
		tracking.POST("/weight", trackingCtl.LogWeight)
		tracking.GET("/weight", trackingCtl.WeightHistory)
		tracking.POST("/water", trackingCtl.LogWater)
		tracking.GET("/water", trackingCtl.WaterByDate)
	}

	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/summary", reportCtl.Summary)
		reports.GET("/weekly", reportCtl.WeeklyOverview)
	}

	chat := r.Group("/chat")
	chat.Use(middlewares.AuthMiddleware())
	{
		chat.GET("/history", chatCtl.History)
		chat.POST("/messages", chatCtl.Send)
	}

	subs := r.Group("/subscription")
	subs.Use(middlewares.AuthMiddleware())
	{
		subs.POST("/checkout", subsCtl.Checkout)
		subs.POST("/cancel", subsCtl.Cancel)
		subs.GET("/status", subsCtl.Status)
	}

	r.GET("/ws", middlewares.AuthMiddleware(), realtimeCtl.EventsWS)

	if gin.Mode() != gin.ReleaseMode && d.Push != nil {
		dev := r.Group("/dev")
		dev.Use(middlewares.AuthMiddleware())
		devCtl := controllers.NewDevController(d.Push)
		dev.POST("/push", devCtl.PushTest)
		dev.POST("/upload", controllers.DevUploadImage)
	}

	return r
}
