package entities

// Result is the envelope wrapped around every response. Failures keep
// HTTP 200; callers branch on Success and Code.
type Result struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SingleResult struct {
	Result
	Data interface{} `json:"data,omitempty"`
}

type ListResult struct {
	Result
	Data interface{} `json:"data,omitempty"`
}

func SuccessResult() Result {
	return Result{Success: true, Code: 0, Message: "success"}
}

func NewSingleResult(data interface{}) SingleResult {
	return SingleResult{Result: SuccessResult(), Data: data}
}

func NewListResult(data interface{}) ListResult {
	return ListResult{Result: SuccessResult(), Data: data}
}

func FailureResult(code int, message string) Result {
	return Result{Success: false, Code: code, Message: message}
}
