package adapter

import (
	"github.com/soundbridge/soundbridge/pkg/buffer"
	"github.com/soundbridge/soundbridge/pkg/param"
	"github.com/soundbridge/soundbridge/pkg/process"
)

// bypassRampSeconds is the fixed crossfade duration used whenever the
// bypass parameter's on/off state changes. Short enough to read as
// instantaneous, long enough to avoid an audible step at the seam.
const bypassRampSeconds = 0.01

func bypassParamActive(p *param.Parameter) bool {
	return p.Normalized() >= 0.5
}

// bypassTarget is 1 (fully wet) or 0 (fully bypassed) depending on p's
// current value, or always 1 if the plugin declared no bypass parameter.
func bypassTarget(p *param.Parameter) float64 {
	if p != nil && bypassParamActive(p) {
		return 0
	}
	return 1
}

// blendBypassCrossfade mixes ctx.Output (already filled by the processor's
// wet render) against ctx.Input sample-by-sample, advancing s.bypassMix one
// ramp step per frame toward target. Called only while a transition is in
// progress; the settled cases (pure wet or pure bypass) skip this
// entirely. Allocation-free: every slice it touches is already materialized
// in ctx.
func blendBypassCrossfade[S buffer.Sample](s *renderState, ctx process.Context[S], sampleRate, target float64) {
	n := ctx.NumSamples()
	out := ctx.Output
	in := ctx.Input
	nCh := out.NumChannels()
	if c := in.NumChannels(); c < nCh {
		nCh = c
	}

	step := 1.0 / (bypassRampSeconds * sampleRate)
	if target < s.bypassMix {
		step = -step
	}
	mix := s.bypassMix
	for i := 0; i < n; i++ {
		mix += step
		if (step > 0 && mix > target) || (step < 0 && mix < target) {
			mix = target
		}
		wetGain := S(mix)
		dryGain := S(1 - mix)
		for ch := 0; ch < nCh; ch++ {
			outCh := out.Channel(ch)
			inCh := in.Channel(ch)
			if i >= len(outCh) || i >= len(inCh) {
				continue // host left this channel's pointer null
			}
			outCh[i] = outCh[i]*wetGain + inCh[i]*dryGain
		}
	}
	s.bypassMix = mix
}
