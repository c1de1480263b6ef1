package settings

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// MaxTxnOps is etcd's default --max-txn-ops.
const MaxTxnOps = 128

// Etcd stores each flat key under {Prefix}/{escaped repository}/{key}.
type Etcd struct {
	KV     clientv3.KV
	Prefix string
	// MaxOps caps the operations of one transaction, it must not exceed the server's --max-txn-ops.
	MaxOps int
}

func NewEtcd(kv clientv3.KV, prefix string) *Etcd {
	return &Etcd{
		KV:     kv,
		Prefix: strings.TrimSuffix(prefix, "/"),
		MaxOps: MaxTxnOps,
	}
}

func (e *Etcd) Get(ctx context.Context, repository string) (Flat, error) {
	prefix := e.repositoryPrefix(repository)

	response, err := e.KV.Get(ctx, prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	flat := Flat{}

	for _, kv := range response.Kvs {
		flat[strings.TrimPrefix(string(kv.Key), prefix)] = string(kv.Value)
	}

	return flat, nil
}

// Replace puts the new keys and deletes stale ones. etcd rejects a put that overlaps a delete range in
// the same transaction, so stale keys are deleted one by one. A replace that fits in MaxOps is a single
// transaction; a larger one is split, puts first, so readers may briefly see stale extra keys.
func (e *Etcd) Replace(ctx context.Context, repository string, flat Flat) error {
	prefix := e.repositoryPrefix(repository)

	existing, err := e.KV.Get(ctx, prefix, clientv3.WithPrefix(), clientv3.WithKeysOnly())
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	ops := make([]clientv3.Op, 0, len(existing.Kvs)+len(flat))

	for _, key := range keys {
		ops = append(ops, clientv3.OpPut(prefix+key, flat[key]))
	}

	for _, kv := range existing.Kvs {
		if _, ok := flat[strings.TrimPrefix(string(kv.Key), prefix)]; !ok {
			ops = append(ops, clientv3.OpDelete(string(kv.Key)))
		}
	}

	size := e.MaxOps
	if size < 1 {
		size = MaxTxnOps
	}

	for len(ops) > 0 {
		batch := ops[:min(size, len(ops))]
		ops = ops[len(batch):]

		if _, err = e.KV.Txn(ctx).Then(batch...).Commit(); err != nil {
			return errors.Wrapf(err, "failed to replace settings of %s", repository)
		}
	}

	return nil
}

func (e *Etcd) repositoryPrefix(repository string) string {
	return fmt.Sprintf("%s/%s/", e.Prefix, url.PathEscape(strings.Trim(repository, "/")))
}
