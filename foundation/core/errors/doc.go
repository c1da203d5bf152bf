// Package errors provides the standard constructors for devkit library errors.
//
// Package: errors
// Title: Standard Error Constructors for devkit Foundation
// Description: Every foundation module reports failures through the
//              constructors of this package so that codes, module names,
//              operations and details are attached the same way everywhere.
//              The returned values are *mdwerror.Error and can be inspected
//              with mdwerror.GetCode and mdwerror.HasCode.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Constructors for the conversion taxonomy, module field
//
// Usage:
//
//	import (
//		mdwerror "github.com/msto63/devkit/foundation/core/error"
//		"github.com/msto63/devkit/foundation/core/errors"
//	)
//
//	func ConvertBase(value string) error {
//		if value == "" {
//			return errors.EmptyRequired(errors.ModuleMathx, "ConvertBase", "value")
//		}
//		return errors.InvalidFormat(errors.ModuleMathx, "ConvertBase", value, "binary digits")
//	}
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) { ... }
//
// The ErrorBuilder is available for cases the constructors do not cover:
//
//	err := errors.NewErrorBuilder(errors.ModuleHashx).
//		Operation("Generate").
//		Message("backend returned no digest").
//		Code(mdwerror.CodeConversionFailed).
//		Build()
package errors
