package apimodels

type Response struct {
	Status  string      `json:"status"`            //处理结果 fail/success
	Message string      `json:"message,omitempty"` //错误信息
	Data    interface{} `json:"data,omitempty"`    //响应数据
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
