package clienthelper

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"sync"

	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
)

// Applied is one server-side apply seen by an ApplyRecorder.
type Applied struct {
	Key          types.NamespacedName
	Object       client.Object
	Force        bool
	FieldManager string
}

// ApplyRecorder stands in for server-side apply on the controller-runtime
// fake client, which cannot handle apply patches. Secret data carried by an
// apply is merged into the stored secret so that later reads observe it.
type ApplyRecorder struct {
	mu      sync.Mutex
	applied []Applied

	// FailOn makes applies to the given keys fail with the mapped error.
	FailOn map[types.NamespacedName]error
}

// Applied returns the applies recorded so far.
func (r *ApplyRecorder) Applied() []Applied {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Applied(nil), r.applied...)
}

// Funcs returns interceptor funcs to pass to
// fake.ClientBuilder.WithInterceptorFuncs.
func (r *ApplyRecorder) Funcs() interceptor.Funcs {
	return interceptor.Funcs{
		Patch: func(ctx context.Context, c client.WithWatch, obj client.Object, patch client.Patch, opts ...client.PatchOption) error {
			if patch.Type() != types.ApplyPatchType {
				return c.Patch(ctx, obj, patch, opts...)
			}

			key := client.ObjectKeyFromObject(obj)
			if err := r.FailOn[key]; err != nil {
				return err
			}

			po := (&client.PatchOptions{}).ApplyOptions(opts)

			r.mu.Lock()
			r.applied = append(r.applied, Applied{
				Key:          key,
				Object:       obj.DeepCopyObject().(client.Object),
				Force:        po.Force != nil && *po.Force,
				FieldManager: po.FieldManager,
			})
			r.mu.Unlock()

			secret, ok := obj.(*corev1.Secret)
			if !ok {
				return nil
			}

			return mergeSecret(ctx, c, secret)
		},
	}
}

func mergeSecret(ctx context.Context, c client.WithWatch, applied *corev1.Secret) error {
	existing := &corev1.Secret{}
	err := c.Get(ctx, client.ObjectKeyFromObject(applied), existing)
	if kerrors.IsNotFound(err) {
		created := applied.DeepCopy()
		created.ResourceVersion = ""
		return c.Create(ctx, created)
	}
	if err != nil {
		return err
	}

	if existing.Data == nil {
		existing.Data = map[string][]byte{}
	}
	for k, v := range applied.Data {
		existing.Data[k] = v
	}

	return c.Update(ctx, existing)
}
