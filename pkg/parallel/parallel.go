// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package parallel runs independent fetches concurrently and joins their results.

It is a thin, typed layer over [errgroup.Group]: every task receives a context
derived from the caller's, the first failing task cancels the others, and its
error is the one returned.

Usage:

	author, books, err := parallel.Join(ctx,
	    func(ctx context.Context) (*Author, error) { return repo.GetAuthor(ctx, id) },
	    func(ctx context.Context) ([]*Book, error) { return repo.ListBooksByAuthor(ctx, id) },
	)
*/
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work producing a value of type T.
type Task[T any] func(ctx context.Context) (T, error)

// Join runs two tasks concurrently and waits for both.
//
// On failure the zero values are returned together with the first error.
func Join[A, B any](ctx context.Context, first Task[A], second Task[B]) (A, B, error) {
	var (
		resultA A
		resultB B
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		value, err := first(groupCtx)
		if err != nil {
			return err
		}
		resultA = value
		return nil
	})

	group.Go(func() error {
		value, err := second(groupCtx)
		if err != nil {
			return err
		}
		resultB = value
		return nil
	})

	if err := group.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}

	return resultA, resultB, nil
}

// Join3 is [Join] for three tasks.
func Join3[A, B, C any](ctx context.Context, first Task[A], second Task[B], third Task[C]) (A, B, C, error) {
	var (
		resultA A
		resultB B
		resultC C
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		resultA, err = first(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		resultB, err = second(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		resultC, err = third(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		var zeroA A
		var zeroB B
		var zeroC C
		return zeroA, zeroB, zeroC, err
	}

	return resultA, resultB, resultC, nil
}

// Settle runs every task concurrently and collects each result independently.
//
// Unlike [Join], a failing task does not cancel the others. Errors are
// reported per index so callers can render partial results.
func Settle[T any](ctx context.Context, tasks ...Task[T]) ([]T, []error) {
	results := make([]T, len(tasks))
	errs := make([]error, len(tasks))

	var group errgroup.Group
	for index, task := range tasks {
		group.Go(func() error {
			results[index], errs[index] = task(ctx)
			return nil
		})
	}
	_ = group.Wait()

	return results, errs
}
