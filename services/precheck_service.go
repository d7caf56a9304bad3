package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// PrecheckService runs a cheap Rekognition label pass over an uploaded
// image before the (much more expensive) vision call, so obvious
// non-food photos don't burn a free analysis.
type PrecheckService struct {
	client *rekognition.Client
}

func NewPrecheckService() (*PrecheckService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &PrecheckService{client: rekognition.NewFromConfig(cfg)}, nil
}

var foodLabels = map[string]struct{}{
	"Food": {}, "Meal": {}, "Dish": {}, "Drink": {}, "Beverage": {},
	"Fruit": {}, "Vegetable": {}, "Dessert": {}, "Bread": {}, "Snack": {},
	"Breakfast": {}, "Lunch": {}, "Dinner": {}, "Plate": {}, "Bowl": {},
}

// EnsureFood returns a ValidationError when none of the detected labels
// look food-related.
func (p *PrecheckService) EnsureFood(ctx context.Context, dataURL string) error {
	idx := strings.Index(dataURL, ",")
	if idx == -1 || !strings.HasPrefix(dataURL, "data:image") {
		return errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return err
	}

	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return err
	}

	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		if _, ok := foodLabels[*l.Name]; ok {
			return nil
		}
	}
	return &ValidationError{Reason: "no food detected in image"}
}
