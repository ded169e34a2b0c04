// Stamp duty Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"property-finance-engine/internal/handlers"
	"property-finance-engine/internal/utils"
)

func main() {
	_ = utils.InitLogger("info")
	defer utils.Sync()

	lambda.Start(handlers.NewStampDutyHandler().Handle)
}
