package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	gateway := services.NewGatewayService()

	var precheck *services.PrecheckService
	if os.Getenv("FOOD_PRECHECK") == "true" {
		p, err := services.NewPrecheckService()
		if err != nil {
			log.Fatalf("rekognition init failed: %v", err)
		}
		precheck = p
	}

	diary := services.NewDiaryService(config.DB)
	tracking := services.NewTrackingService(config.DB)

	deps := routes.Deps{
		Analysis: services.NewAnalysisService(gateway, precheck),
		Usage:    services.NewUsageService(config.DB),
		Diary:    diary,
		Goals:    services.NewGoalService(config.DB, diary, tracking),
		Tracking: tracking,
		Reports:  services.NewReportService(config.DB),
		Chat:     services.NewChatService(config.DB, gateway, diary),
		Subs:     services.NewSubscriptionService(config.DB),
		RT:       services.NewRealtimeHub(),
	}

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled, SNS init failed: %v", err)
	} else {
		deps.Push = push
	}

	services.InitAlertDeps(config.DB, deps.RT, deps.Push)

	r := routes.SetupRouter(deps)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
