package usecase

// Log prefixes
const (
	LogPrefixAnswer   = "internal.chatbot.usecase.Answer"
	LogPrefixDispatch = "internal.chatbot.usecase.dispatch"
)

// Context sentences handed to the final prompt.
const (
	ContextTotalProducts      = "Tổng số sản phẩm trong JobFinder là: %d."
	ContextBestSelling        = "Sản phẩm bán chạy nhất là '%s' với %d lượt bán."
	ContextNoBestSelling      = "Không tìm thấy sản phẩm bán chạy nhất."
	ContextProductDetails     = "Chi tiết sản phẩm '%s': Giá: %s USD, Mô tả: %s, Lượt bán: %d."
	ContextProductNotFound    = "Không tìm thấy thông tin cho sản phẩm '%s'."
	ContextMissingProductName = "Xin lỗi, tôi cần tên sản phẩm để tra cứu chi tiết."
	ContextTotalJobs          = "Tổng số công việc hiện có trong JobFinder là: %d."
	ContextCategoryJobs       = "Các công việc trong danh mục '%s':\n%s"
	ContextNoCategoryJobs     = "Không tìm thấy công việc trong danh mục '%s'."
	ContextMissingCategory    = "Xin lỗi, tôi cần danh mục công việc để tra cứu."
	ContextCompanyJobs        = "Các công việc của công ty '%s':\n%s"
	ContextNoCompanyJobs      = "Không tìm thấy công việc cho công ty '%s'."
	ContextMissingCompanyName = "Xin lỗi, tôi cần tên công ty để tra cứu công việc."
	ContextMappingFailure     = "Tôi không thể thực hiện yêu cầu này. Có vẻ có lỗi trong việc ánh xạ hàm."

	JobLine       = "- %s (Mức lương: %s USD)"
	NoDescription = "Không có"
)

// PromptFinalAnswer wraps the lookup context and the user's question.
const PromptFinalAnswer = "Dựa trên thông tin sau từ cơ sở dữ liệu JobFinder:\n\n%s\n\nTrả lời câu hỏi của người dùng: '%s' một cách tự nhiên và hữu ích."

// Lookup results recorded in metrics.
const (
	lookupFound           = "found"
	lookupNotFound        = "not_found"
	lookupMissingParam    = "missing_param"
	lookupUnknownFunction = "unknown_function"
	lookupError           = "error"
)
