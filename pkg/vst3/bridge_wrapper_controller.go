package vst3

// #cgo CFLAGS: -I../../include
// #include "../../include/vst3/vst3_c_api.h"
// #include <stdlib.h>
// #include <string.h>
import "C"
import (
	"fmt"
	"unsafe"
)

// IEditController callbacks

//export GoEditControllerSetComponentState
func GoEditControllerSetComponentState(_ unsafe.Pointer, _ unsafe.Pointer) C.Steinberg_tresult {
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerSetState
func GoEditControllerSetState(_ unsafe.Pointer, _ unsafe.Pointer) C.Steinberg_tresult {
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerGetState
func GoEditControllerGetState(_ unsafe.Pointer, _ unsafe.Pointer) C.Steinberg_tresult {
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerGetParameterCount
func GoEditControllerGetParameterCount(componentPtr unsafe.Pointer) C.int32_t {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil || wrapper.component == nil {
		return 0
	}
	return C.int32_t(wrapper.component.GetParameterCount())
}

//export GoEditControllerGetParameterInfo
func GoEditControllerGetParameterInfo(componentPtr unsafe.Pointer, paramIndex C.int32_t, info *C.struct_Steinberg_Vst_ParameterInfo) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil || info == nil {
		return C.Steinberg_tresult(ResultFalse)
	}

	paramInfo, err := wrapper.component.GetParameterInfo(int32(paramIndex))
	if err != nil {
		return C.Steinberg_tresult(ResultTrue)
	}

	info.id = C.Steinberg_Vst_ParamID(paramInfo.ID)
	copyStringToTChar(paramInfo.Title, &info.title[0], 128)
	copyStringToTChar(paramInfo.ShortTitle, &info.shortTitle[0], 128)
	copyStringToTChar(paramInfo.Units, &info.units[0], 128)
	info.stepCount = C.int32_t(paramInfo.StepCount)
	info.defaultNormalizedValue = C.Steinberg_Vst_ParamValue(paramInfo.DefaultValue)
	info.unitId = C.Steinberg_Vst_UnitID(paramInfo.UnitID)
	info.flags = C.int32_t(paramInfo.Flags)

	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerGetParamStringByValue
func GoEditControllerGetParamStringByValue(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID, valueNormalized C.Steinberg_Vst_ParamValue, str *C.Steinberg_Vst_TChar) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil || str == nil {
		return C.Steinberg_tresult(ResultFalse)
	}

	text, err := wrapper.component.GetParamStringByValue(uint32(id), float64(valueNormalized))
	if err != nil {
		plain := wrapper.component.NormalizedParamToPlain(uint32(id), float64(valueNormalized))
		text = formatValue(plain)
	}
	copyStringToTChar(text, str, 128)
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerGetParamValueByString
func GoEditControllerGetParamValueByString(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID, str *C.Steinberg_Vst_TChar, valueNormalized *C.Steinberg_Vst_ParamValue) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil || str == nil || valueNormalized == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	value, err := wrapper.component.GetParamValueByString(uint32(id), stringFromTChar(str))
	if err != nil {
		return C.Steinberg_tresult(ResultTrue)
	}
	*valueNormalized = C.Steinberg_Vst_ParamValue(value)
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerNormalizedParamToPlain
func GoEditControllerNormalizedParamToPlain(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID, valueNormalized C.Steinberg_Vst_ParamValue) C.Steinberg_Vst_ParamValue {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return valueNormalized
	}
	plain := wrapper.component.NormalizedParamToPlain(uint32(id), float64(valueNormalized))
	return C.Steinberg_Vst_ParamValue(plain)
}

//export GoEditControllerPlainParamToNormalized
func GoEditControllerPlainParamToNormalized(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID, plainValue C.Steinberg_Vst_ParamValue) C.Steinberg_Vst_ParamValue {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return plainValue
	}
	normalized := wrapper.component.PlainParamToNormalized(uint32(id), float64(plainValue))
	return C.Steinberg_Vst_ParamValue(normalized)
}

//export GoEditControllerGetParamNormalized
func GoEditControllerGetParamNormalized(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID) C.Steinberg_Vst_ParamValue {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return 0
	}
	return C.Steinberg_Vst_ParamValue(wrapper.component.GetParamNormalized(uint32(id)))
}

//export GoEditControllerSetParamNormalized
func GoEditControllerSetParamNormalized(componentPtr unsafe.Pointer, id C.Steinberg_Vst_ParamID, value C.Steinberg_Vst_ParamValue) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	if err := wrapper.component.SetParamNormalized(uint32(id), float64(value)); err != nil {
		return C.Steinberg_tresult(ResultTrue)
	}
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerSetComponentHandler
func GoEditControllerSetComponentHandler(componentPtr unsafe.Pointer, handler unsafe.Pointer) C.Steinberg_tresult {
	wrapper := getComponent(uintptr(componentPtr))
	if wrapper == nil {
		return C.Steinberg_tresult(ResultFalse)
	}
	wrapper.handlerMu.Lock()
	wrapper.componentHandler = handler
	wrapper.handlerMu.Unlock()
	return C.Steinberg_tresult(ResultOK)
}

//export GoEditControllerCreateView
func GoEditControllerCreateView(_ unsafe.Pointer, _ *C.char) unsafe.Pointer {
	return nil
}

// formatValue renders a plain parameter value with modest default
// precision, used only as a fallback when a parameter's own formatter
// declines to handle a request.
func formatValue(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%.0f", value)
	}
	return fmt.Sprintf("%.2f", value)
}
