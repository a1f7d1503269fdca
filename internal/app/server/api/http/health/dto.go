package health

type healthOutput struct {
	Body healthResponse
}

// healthResponse is the body of GET {prefix}health.
type healthResponse struct {
	Status string `json:"status" example:"OK" doc:"OK while the process serves requests"`
}
