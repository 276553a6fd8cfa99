package llm_mocks

//go:generate mockgen -source=../types.go -destination=llm_mocks.go -package=llm_mocks
