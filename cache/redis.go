package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client é um wrapper fino sobre o Redis para cache de leitura (JSON + TTL).
// Todas as operações são tolerantes a falha: cache indisponível nunca derruba
// a requisição, só pula o cache. Um *Client nil também é seguro.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Client{rdb: rdb, ttl: ttl}
}

// GetJSON carrega e desserializa uma chave. Retorna false em miss ou erro.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: erro ao ler %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache: payload inválido em %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON serializa e grava uma chave com o TTL padrão.
func (c *Client) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache: erro ao gravar %s: %v", key, err)
	}
}

// Ping confere a conexão no startup.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
