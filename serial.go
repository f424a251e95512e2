// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poll

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing adapter identifier.
// Each call to New assigns the next serial value. Drivers use it to key
// ready queues and wake bookkeeping without holding adapter pointers.
type Serial = uint32

// counter is the global monotonic counter for adapter serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
