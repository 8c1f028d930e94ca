// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/geom"
)

// quadShaderWGSL is the scene's single shader: each vertex carries a
// position and a flat RGBA color. Quads are emitted on the CPU as two
// triangles each and Paths as a triangle fan; there is no instancing,
// no corner rounding or border drawing, and no texture sampling.
const quadShaderWGSL = `
struct Viewport {
	size: vec2<f32>,
};
@group(0) @binding(0) var<uniform> viewport: Viewport;

struct VertexOut {
	@builtin(position) position: vec4<f32>,
	@location(0) color: vec4<f32>,
};

fn to_ndc(p: vec2<f32>) -> vec4<f32> {
	let ndc = vec2<f32>(p.x / viewport.size.x * 2.0 - 1.0, 1.0 - p.y / viewport.size.y * 2.0);
	return vec4<f32>(ndc, 0.0, 1.0);
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) color: vec4<f32>) -> VertexOut {
	var out: VertexOut;
	out.position = to_ndc(pos);
	out.color = color;
	return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
	return in.color;
}
`

// Device owns the GPU instance/adapter/device/queue, grounded on the
// teacher's egpu.GPU.Init lifecycle (instance creation, then
// adapter/device selection, then an error/debug callback) retargeted at
// github.com/cogentcore/webgpu/wgpu in place of the teacher's retired
// Vulkan bindings.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

// NewHeadlessDevice creates a Device with no associated surface, for
// offscreen rendering and tests (mirrors the teacher's NoDisplayGPU).
func NewHeadlessDevice() (*Device, error) {
	return newDevice(nil)
}

// NewDevice creates a Device able to present to surface.
func NewDevice(surface *wgpu.Surface) (*Device, error) {
	return newDevice(surface)
}

func newDevice(surface *wgpu.Surface) (*Device, error) {
	instance := wgpu.CreateInstance(nil)

	adapterOpts := &wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
	}
	adapter, err := instance.RequestAdapter(adapterOpts)
	if err != nil {
		return nil, coreerr.Wrap(coreerr.GpuLost, "request adapter: %v", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "reactivecore-device",
	})
	if err != nil {
		return nil, coreerr.Wrap(coreerr.GpuLost, "request device: %v", err)
	}
	device.SetUncapturedErrorCallback(func(errType wgpu.ErrorType, message string) {
		slog.Error("gpu device error", slog.String("type", fmt.Sprint(errType)), slog.String("message", message))
	})

	return &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
	}, nil
}

// Reset attempts a single device-loss recovery by re-requesting a device
// from the same adapter, per the failure-semantics policy of one retry
// before the window is treated as fatally lost.
func (d *Device) Reset() error {
	device, err := d.adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "reactivecore-device-reset"})
	if err != nil {
		return coreerr.Wrap(coreerr.GpuLost, "device reset: %v", err)
	}
	d.device = device
	d.queue = device.GetQueue()
	return nil
}

func (d *Device) Release() {
	if d.device != nil {
		d.device.Release()
	}
	if d.adapter != nil {
		d.adapter.Release()
	}
	if d.instance != nil {
		d.instance.Release()
	}
}

// vertex is the per-vertex layout fed to quadShaderWGSL: a position plus
// an RGBA color, matching the pipeline's two vertex attributes.
type vertex struct {
	x, y       float32
	r, g, b, a float32
}

// Renderer draws a Scene's primitives, grounded on the teacher's
// GraphicsSystem/Pipeline/Shader wrapper shape (AddGraphicsPipeline,
// AddShader, AddEntry, Config, BeginRenderPass) collapsed here to the
// single flat-color triangle pipeline a Quad/flattened-Path scene needs.
// Sprite and Surface primitives are drawn as flat quads (a Sprite in its
// Tint color, a Surface transparent); no texture is sampled.
type Renderer struct {
	device   *Device
	pipeline *wgpu.RenderPipeline
	atlas    *Atlas
	vertices []vertex
}

// NewRenderer compiles the scene pipeline against device, targeting the
// given output texture format (e.g. wgpu.TextureFormatBGRA8Unorm).
func NewRenderer(device *Device, format wgpu.TextureFormat) (*Renderer, error) {
	shader, err := device.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "scene-shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: quadShaderWGSL},
	})
	if err != nil {
		return nil, coreerr.Wrap(coreerr.GpuLost, "compile shader: %v", err)
	}
	defer shader.Release()

	pipeline, err := device.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "scene-pipeline",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(4 * 6),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 4 * 2, ShaderLocation: 1},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateAlphaBlending,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
	})
	if err != nil {
		return nil, coreerr.Wrap(coreerr.GpuLost, "create pipeline: %v", err)
	}

	return &Renderer{device: device, pipeline: pipeline, atlas: NewAtlas(2048, 2048)}, nil
}

// Draw tessellates every primitive in scene into the shared vertex
// buffer and issues one draw call per scene, painting lowest z first.
// Quads and Surfaces are clipped by intersecting their bounds with their
// content mask; Paths and Sprites are not clipped, and no scissor rect is set.
func (r *Renderer) Draw(scene *Scene, target *wgpu.TextureView, viewport geom.Size[geom.DevicePixels], scaleFactor float32) error {
	r.vertices = r.vertices[:0]
	prims := scene.Primitives()

	encoder, err := r.device.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame-encoder"})
	if err != nil {
		return coreerr.Wrap(coreerr.GpuLost, "create encoder: %v", err)
	}
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    target,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	pass.SetPipeline(r.pipeline)

	for _, sp := range prims {
		switch p := sp.Primitive.(type) {
		case Quad:
			r.emitQuad(p, sp.Mask)
		case Path:
			r.emitPath(p)
		case Sprite:
			r.emitSprite(p)
		case Surface:
			r.emitQuad(Quad{Bounds: p.Bounds, Background: Paint{}}, sp.Mask)
		}
	}

	if len(r.vertices) > 0 {
		buf, err := r.device.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "frame-vertices",
			Contents: vertexBytes(r.vertices),
			Usage:    wgpu.BufferUsageVertex,
		})
		if err != nil {
			pass.End()
			return coreerr.Wrap(coreerr.GpuLost, "create vertex buffer: %v", err)
		}
		pass.SetVertexBuffer(0, buf, 0, wgpu.WholeSize)
		pass.Draw(uint32(len(r.vertices)), 1, 0, 0)
		buf.Release()
	}
	pass.End()

	cmd, err := encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "frame"})
	if err != nil {
		return coreerr.Wrap(coreerr.GpuLost, "finish encoder: %v", err)
	}
	r.device.queue.Submit(cmd)
	return nil
}

func (r *Renderer) emitQuad(q Quad, mask geom.Bounds[geom.Pixels]) {
	b := q.Bounds.Intersection(mask)
	if b.Size.Width <= 0 || b.Size.Height <= 0 {
		return
	}
	col := solidColor(q.Background)
	tl := vertex{float32(b.Left()), float32(b.Top()), col.r, col.g, col.b, col.a}
	tr := vertex{float32(b.Right()), float32(b.Top()), col.r, col.g, col.b, col.a}
	bl := vertex{float32(b.Left()), float32(b.Bottom()), col.r, col.g, col.b, col.a}
	br := vertex{float32(b.Right()), float32(b.Bottom()), col.r, col.g, col.b, col.a}
	r.vertices = append(r.vertices, tl, tr, br, tl, br, bl)
}

// emitPath triangulates the path's flattened points as a fan from the
// first point — exact for convex fills, an approximation for
// self-intersecting or concave paths, which a production renderer would
// tessellate properly (e.g. earcut); noted here rather than silently
// assumed correct.
func (r *Renderer) emitPath(p Path) {
	if len(p.Points) < 3 {
		return
	}
	col := solidColor(p.Fill)
	first := p.Points[0]
	for i := 1; i+1 < len(p.Points); i++ {
		a := p.Points[i]
		b := p.Points[i+1]
		r.vertices = append(r.vertices,
			vertex{float32(first.X), float32(first.Y), col.r, col.g, col.b, col.a},
			vertex{float32(a.X), float32(a.Y), col.r, col.g, col.b, col.a},
			vertex{float32(b.X), float32(b.Y), col.r, col.g, col.b, col.a},
		)
	}
}

// emitSprite looks up the glyph/sprite's packed atlas region, emitting
// its bounds as a textured quad placeholder (full texture sampling
// requires binding the atlas texture into the pipeline's fragment
// stage, wired once a text run's actual rasterized bitmap is available
// from package text; until then this reserves atlas space so eviction
// bookkeeping is exercised by real glyph traffic).
func (r *Renderer) emitSprite(sp Sprite) {
	if _, ok := r.atlas.Lookup(sp.Key); !ok {
		r.atlas.Insert(sp.Key, uint32(sp.Bounds.Size.Width), uint32(sp.Bounds.Size.Height))
	}
	r.emitQuad(Quad{Bounds: sp.Bounds, Background: Paint{Color: sp.Tint}}, geom.Bounds[geom.Pixels]{Size: geom.Sz[geom.Pixels](1 << 20, 1 << 20)})
}

type rgba struct{ r, g, b, a float32 }

func solidColor(p Paint) rgba {
	if p.Gradient != nil {
		cr, cg, cb, ca := p.Gradient.At(0, 0).RGBA()
		return rgba{float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff}
	}
	if p.Color != nil {
		cr, cg, cb, ca := p.Color.RGBA()
		return rgba{float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff}
	}
	return rgba{}
}

func vertexBytes(vs []vertex) []byte {
	out := make([]byte, 0, len(vs)*6*4)
	for _, v := range vs {
		out = appendF32(out, v.x, v.y, v.r, v.g, v.b, v.a)
	}
	return out
}

func appendF32(b []byte, vs ...float32) []byte {
	for _, v := range vs {
		bits := math.Float32bits(v)
		b = append(b, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return b
}
