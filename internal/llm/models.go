package llm

// KnownModels содержит модели OpenAI, с которыми сервис проверялся.
// Другие идентификаторы допустимы, но при старте выводится предупреждение.
var KnownModels = []ModelInfo{
	{ID: "gpt-4.1-mini", Name: "GPT-4.1 mini"},
	{ID: "gpt-4.1", Name: "GPT-4.1"},
	{ID: "gpt-4o-mini", Name: "GPT-4o mini"},
	{ID: "o3-mini", Name: "o3-mini"},
}

type ModelInfo struct {
	ID   string
	Name string
}

// GetModelByID возвращает информацию о модели по её ID или nil.
func GetModelByID(modelID string) *ModelInfo {
	for _, m := range KnownModels {
		if m.ID == modelID {
			return &m
		}
	}
	return nil
}
