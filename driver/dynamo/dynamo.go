/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package dynamo lifts DynamoDB SDK errors into ORM errors.
package dynamo

import (
	"errors"
	"net/http"

	"dirpx.dev/ormerrors/orm"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var _ orm.Converter = Convert

// Convert is an orm.Converter for aws-sdk-go-v2 DynamoDB errors.
//
// Failed conditions and transaction conflicts answer 409, throttling 429.
// A missing table and attributevalue mapping errors are usage errors. Any
// other smithy API error answers 400 for client faults and 503 otherwise.
func Convert(err error) (error, bool) {
	if out, ok := convertModeled(err); ok {
		return out, true
	}
	if out, ok := convertMapping(err); ok {
		return out, true
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	msg := apiErr.ErrorMessage()
	if msg == "" {
		msg = apiErr.ErrorCode()
	}
	if apiErr.ErrorFault() == smithy.FaultClient {
		return orm.Wrap(err, http.StatusBadRequest, msg), true
	}
	return orm.Wrap(err, http.StatusServiceUnavailable, msg), true
}

func convertModeled(err error) (error, bool) {
	var (
		condErr     *types.ConditionalCheckFailedException
		txCancelErr *types.TransactionCanceledException
		txConflict  *types.TransactionConflictException
		throughput  *types.ProvisionedThroughputExceededException
		limitErr    *types.RequestLimitExceeded
		throttleErr *types.ThrottlingException
		notFound    *types.ResourceNotFoundException
	)
	switch {
	case errors.As(err, &condErr):
		return orm.Wrap(err, http.StatusConflict, "Condition check failed"), true
	case errors.As(err, &txCancelErr), errors.As(err, &txConflict):
		return orm.Wrap(err, http.StatusConflict, "Transaction conflict"), true
	case errors.As(err, &throughput), errors.As(err, &limitErr), errors.As(err, &throttleErr):
		return orm.Wrap(err, http.StatusTooManyRequests, "Request rate exceeded"), true
	case errors.As(err, &notFound):
		return &orm.UsageError{Reason: "table or index not found", Err: err}, true
	}
	return nil, false
}

func convertMapping(err error) (error, bool) {
	var (
		unmarshalErr *attributevalue.UnmarshalError
		typeErr      *attributevalue.UnmarshalTypeError
		invUnmarshal *attributevalue.InvalidUnmarshalError
		invMarshal   *attributevalue.InvalidMarshalError
	)
	switch {
	case errors.As(err, &typeErr), errors.As(err, &unmarshalErr):
		return &orm.UsageError{Reason: "item does not match model", Err: err}, true
	case errors.As(err, &invUnmarshal), errors.As(err, &invMarshal):
		return &orm.UsageError{Reason: "invalid attributevalue target", Err: err}, true
	}
	return nil, false
}
