package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/hangar-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

const versionKey = "hangar:reports:version"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Recorder recebe os resultados de acesso ao cache
type Recorder interface {
	CacheHit()
	CacheMiss()
	CacheError()
}

type Loader func(ctx context.Context) (any, error)

// ReportCache guarda relatórios prontos no Redis. As chaves carregam uma versão
// global que é incrementada a cada escrita de registro ou imposto, invalidando
// tudo de uma vez. Construções concorrentes da mesma chave são agrupadas.
type ReportCache struct {
	client   *redis.Client
	ttl      time.Duration
	recorder Recorder
	group    singleflight.Group
}

// New aceita client nil, caso em que o cache fica desligado e apenas agrupa
// construções concorrentes.
func New(client *redis.Client, ttl time.Duration, recorder Recorder) *ReportCache {
	return &ReportCache{client: client, ttl: ttl, recorder: recorder}
}

func (c *ReportCache) enabled() bool {
	return c != nil && c.client != nil
}

// Version devolve a versão atual, inicializando quando ausente
func (c *ReportCache) Version(ctx context.Context) (int64, error) {
	if !c.enabled() {
		return 0, nil
	}

	ver, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, versionKey).Int64()
	}
	return ver, err
}

// BuildKey compõe a chave versionada
func (c *ReportCache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := "hangar:reports:" + strings.Join(parts, ":")
	if !c.enabled() {
		return joined, nil
	}

	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d", joined, ver), nil
}

// FetchJSON carrega dest do cache ou o constrói com loader. Falhas do Redis
// não impedem a resposta: o relatório é construído e o erro apenas registrado.
func (c *ReportCache) FetchJSON(ctx context.Context, dest any, loader Loader, parts ...string) error {
	if loader == nil {
		return errors.New("cache: loader obrigatório")
	}

	cacheable := c.enabled()
	key, err := c.BuildKey(ctx, parts...)
	if err != nil {
		c.recordError(ctx, err)
		key = strings.Join(parts, ":")
		cacheable = false
	}

	if cacheable {
		payload, getErr := c.client.Get(ctx, key).Bytes()
		switch {
		case getErr == nil:
			c.hit()
			return json.Unmarshal(payload, dest)
		case !errors.Is(getErr, redis.Nil):
			c.recordError(ctx, getErr)
		}
	}
	c.miss()

	raw, err := c.build(ctx, key, loader)
	if err != nil {
		return err
	}

	if cacheable {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			c.recordError(ctx, setErr)
		}
	}

	return json.Unmarshal(raw, dest)
}

// build é compartilhado entre os chamadores da mesma chave: o loader não herda o
// cancelamento de quem chegou primeiro, cada chamador desiste apenas pelo próprio ctx.
func (c *ReportCache) build(ctx context.Context, key string, loader Loader) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	resultChan := c.group.DoChan(key, func() (any, error) {
		value, err := loader(shared)
		if err != nil {
			return nil, err
		}
		return json.Marshal(value)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// Bump invalida todos os relatórios em cache
func (c *ReportCache) Bump(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *ReportCache) hit() {
	if c != nil && c.recorder != nil {
		c.recorder.CacheHit()
	}
}

func (c *ReportCache) miss() {
	if c != nil && c.recorder != nil {
		c.recorder.CacheMiss()
	}
}

func (c *ReportCache) recordError(ctx context.Context, err error) {
	log.ForContext(ctx).WithError(err).Warn("cache: falha ao acessar o Redis, construindo relatório sem cache")
	if c != nil && c.recorder != nil {
		c.recorder.CacheError()
	}
}
