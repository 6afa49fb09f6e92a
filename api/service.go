package api

import "ExtratoAnalytics/internal/serviceiface"

type GatewayService struct {
	config map[string]interface{}
}

func NewGatewayService(cfg map[string]interface{}) serviceiface.Service {
	return &GatewayService{config: cfg}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	go StartGateway(s.analysisTargets())
	return nil
}

func (s *GatewayService) Stop() error {
	return nil
}

func (s *GatewayService) analysisTargets() []string {
	raw, ok := s.config["analysis_targets"].([]interface{})
	if !ok {
		return nil
	}
	targets := make([]string, 0, len(raw))
	for _, v := range raw {
		if t, ok := v.(string); ok && t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}
