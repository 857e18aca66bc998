package main

// @title           Wallet Agent Chat API
// @version         1.0
// @description     Conversa entre carteiras conectadas e o agente de blockchain

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
