package signals

//go:generate go run ../cmd/codegen --out signals_gen.go
