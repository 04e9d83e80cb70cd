package chatbot

// ApologyMessage is printed whenever answering fails for any reason.
const ApologyMessage = "Xin lỗi, tôi gặp vấn đề khi xử lý yêu cầu của bạn. Vui lòng thử lại sau."
