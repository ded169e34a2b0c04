// Eligibility scoring Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"property-finance-engine/internal/handlers"
	"property-finance-engine/internal/utils"
)

func main() {
	_ = utils.InitLogger("info")
	defer utils.Sync()

	handler, err := handlers.NewScoreHandler()
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	lambda.Start(handler.Handle)
}
