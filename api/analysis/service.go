package analysis

import (
	"ExtratoAnalytics/internal/serviceiface"
)

type AnalysisService struct {
	config map[string]interface{}
}

func NewAnalysisService(cfg map[string]interface{}) serviceiface.Service {
	return &AnalysisService{config: cfg}
}

func (s *AnalysisService) Name() string {
	return "analysis"
}

func (s *AnalysisService) Start() error {
	go StartAnalysisService()
	return nil
}

func (s *AnalysisService) Stop() error {
	return nil
}
