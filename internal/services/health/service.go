package health

// Service encapsulates health-related checks.
type Service struct {
	semanticMatching bool
}

// NewService constructs a new health service.
func NewService(semanticMatching bool) *Service {
	return &Service{semanticMatching: semanticMatching}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":                true,
		"semantic_matching": s.semanticMatching,
	}
}
