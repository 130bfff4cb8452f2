package contract

type Response struct {
	Code    string   `json:"code"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
