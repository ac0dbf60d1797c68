package eval

import (
	_ "embed"

	"github.com/conneroisu/lispy/internal/reader"
	"github.com/conneroisu/lispy/internal/value"
)

//go:embed lispy.lsp
var bootstrapSource string

// RegisterProcedure installs a host-provided Procedure under name
// (spec.md §6 "register_procedure").
func RegisterProcedure(env *value.Environment, name string, fn value.ProcedureFunc) {
	env.Define(name, value.NewProcedure(name, fn))
}

// RegisterSpecial installs a host-provided SpecialProcedure under name
// (spec.md §6 "register_special").
func RegisterSpecial(env *value.Environment, name string, fn value.SpecialFunc) {
	env.Define(name, value.NewSpecialProcedure(name, fn))
}

// NewEnvironment creates a child of parent, or a fresh root if parent is
// nil (spec.md §6 "make_environment").
func NewEnvironment(parent *value.Environment) *value.Environment {
	return value.NewEnvironment(parent)
}

// NewStandardEnvironment builds the root environment populated with the
// full standard procedure library from spec.md §4.E, then evaluates the
// embedded bootstrap script over it (spec.md §6 "Bootstrap file").
func NewStandardEnvironment() *value.Environment {
	env := value.NewEnvironment(nil)

	env.Define("nil", value.Nil{})
	env.Define("undefined", value.Undefined{})
	env.Define("true", value.Bool(true))
	env.Define("false", value.Bool(false))

	RegisterProcedure(env, "+", builtinAdd)
	RegisterProcedure(env, "-", builtinSub)
	RegisterProcedure(env, "*", builtinMul)
	RegisterProcedure(env, "/", builtinDiv)

	RegisterProcedure(env, "<", builtinLt)
	RegisterProcedure(env, "<=", builtinLe)
	RegisterProcedure(env, ">", builtinGt)
	RegisterProcedure(env, ">=", builtinGe)
	RegisterProcedure(env, "=", builtinValueEqual)
	RegisterProcedure(env, "!=", builtinValueNotEqual)
	RegisterProcedure(env, "===", builtinStrictEqual)
	RegisterProcedure(env, "!==", builtinStrictNotEqual)

	RegisterProcedure(env, "to_s", builtinToString)
	RegisterProcedure(env, "to_string", builtinToString)

	RegisterProcedure(env, "print", builtinPrint)

	RegisterProcedure(env, "car", builtinCar)
	RegisterProcedure(env, "head", builtinCar)
	RegisterProcedure(env, "cdr", builtinCdr)
	RegisterProcedure(env, "tail", builtinCdr)
	RegisterProcedure(env, "cons", builtinCons)
	RegisterProcedure(env, "concat", builtinConcat)
	RegisterProcedure(env, "length", builtinLength)
	RegisterProcedure(env, "list", builtinList)
	RegisterProcedure(env, "tuple", builtinTuple)
	RegisterProcedure(env, "index", builtinIndex)
	RegisterProcedure(env, "last", builtinLast)
	RegisterProcedure(env, "map", builtinMap)
	RegisterProcedure(env, "each", builtinEach)
	RegisterProcedure(env, "reduce", builtinReduce)
	RegisterProcedure(env, "slice", builtinSlice)

	RegisterProcedure(env, "list?", builtinListP)
	RegisterProcedure(env, "null?", builtinNullP)
	RegisterProcedure(env, "number?", builtinNumberP)
	RegisterProcedure(env, "procedure?", builtinProcedureP)
	RegisterProcedure(env, "symbol?", builtinSymbolP)
	RegisterProcedure(env, "lambda?", builtinLambdaP)
	RegisterProcedure(env, "macro?", builtinMacroP)
	RegisterProcedure(env, "env?", builtinEnvP)
	RegisterProcedure(env, "typeof", builtinTypeof)

	RegisterProcedure(env, "not", builtinNot)
	RegisterProcedure(env, "and", builtinAnd)
	RegisterProcedure(env, "or", builtinOr)

	RegisterSpecial(env, "env:current", envCurrent)
	RegisterProcedure(env, "env:new", builtinEnvNew)
	RegisterProcedure(env, "env:get", builtinEnvGet)
	RegisterProcedure(env, "env:define", builtinEnvDefine)
	RegisterProcedure(env, "env:defined?", builtinEnvDefinedP)
	RegisterProcedure(env, "env:set!", builtinEnvSetBang)
	RegisterProcedure(env, "env:update", builtinEnvUpdate)
	RegisterProcedure(env, "env:parent", builtinEnvParent)
	RegisterProcedure(env, "env:parent?", builtinEnvParentP)
	RegisterProcedure(env, "env:toplevel", builtinEnvToplevel)
	RegisterProcedure(env, "env:keys", builtinEnvKeys)
	RegisterProcedure(env, "env:dump", builtinEnvDump)

	RegisterProcedure(env, "dict:new", builtinDictNew)
	RegisterProcedure(env, "dict:get", builtinDictGet)
	RegisterProcedure(env, "dict:set", builtinDictSet)
	RegisterProcedure(env, "dict:update", builtinDictUpdate)
	RegisterProcedure(env, "dict:key?", builtinDictKeyP)
	RegisterProcedure(env, "dict:keys", builtinDictKeys)

	RegisterSpecial(env, "eval", metaEval)
	RegisterProcedure(env, "parse", builtinParse)
	RegisterProcedure(env, "inspect", builtinInspect)

	RegisterProcedure(env, "lambda:new", builtinLambdaNew)
	RegisterProcedure(env, "lambda:args", builtinLambdaArgs)
	RegisterProcedure(env, "lambda:body", builtinLambdaBody)
	RegisterProcedure(env, "lambda:env", builtinLambdaEnv)
	RegisterProcedure(env, "lambda:evaluator", builtinLambdaEvaluator)
	RegisterProcedure(env, "macro:new", builtinMacroNew)
	RegisterProcedure(env, "macro:args", builtinMacroArgs)
	RegisterProcedure(env, "macro:body", builtinMacroBody)
	RegisterProcedure(env, "macro:env", builtinMacroEnv)
	RegisterProcedure(env, "macro:evaluator", builtinMacroEvaluator)

	RegisterProcedure(env, "error", builtinError)
	RegisterProcedure(env, "error:custom", builtinErrorCustom)
	RegisterProcedure(env, "error:name", builtinErrorName)
	RegisterProcedure(env, "error:message", builtinErrorMessage)
	RegisterProcedure(env, "error:stack", builtinErrorStack)
	RegisterProcedure(env, "error:code", builtinErrorCode)

	RegisterProcedure(env, "kernel:debug?", builtinKernelDebugP)
	RegisterProcedure(env, "kernel:debug", builtinKernelDebug)

	loadBootstrap(env)

	return env
}

// loadBootstrap evaluates the embedded core script into env, exactly as
// spec.md §6 describes for an optional bootstrap file: a normal
// evaluate(parse(source), root) call, no special treatment. A failure
// here is a defect in the embedded script, not a recoverable condition,
// so it panics rather than returning a half-populated environment.
func loadBootstrap(env *value.Environment) {
	expr, err := reader.Read(bootstrapSource)
	if err != nil {
		panic("lispy: malformed bootstrap script: " + err.Error())
	}
	if _, err := Evaluate(expr, env); err != nil {
		panic("lispy: bootstrap script raised: " + err.Error())
	}
}
