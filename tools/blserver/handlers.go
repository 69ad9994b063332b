package main

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/nintenstudio/CTegra-Swizzle/blocklinear"
	"github.com/nintenstudio/CTegra-Swizzle/internal/dump"
)

func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// writeJSON and writeError mirror webutils.WriteJson / WriteError: a
// thin, repository-wide convention for HTTP responses rather than a
// one-off per handler.
func writeJSON(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(res)
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// descriptorFromQuery builds a Descriptor from the query string shared
// by /size and /plan: width, height, depth, bpp, block_w, block_h,
// block_d, mips, layers, block_height.
func descriptorFromQuery(r *http.Request) (blocklinear.Descriptor, error) {
	q := r.URL.Query()

	get := func(key string, def int) (int, error) {
		v := q.Get(key)
		if v == "" {
			return def, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s %q", key, v)
		}
		return n, nil
	}

	width, err := get("width", 0)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	height, err := get("height", 0)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	depth, err := get("depth", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	bpp, err := get("bpp", 0)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	blockW, err := get("block_w", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	blockH, err := get("block_h", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	blockD, err := get("block_d", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	mips, err := get("mips", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	layers, err := get("layers", 1)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}
	blockHeight, err := get("block_height", 0)
	if err != nil {
		return blocklinear.Descriptor{}, err
	}

	if width <= 0 || height <= 0 || bpp <= 0 {
		return blocklinear.Descriptor{}, errors.New("width, height and bpp are required and must be positive")
	}

	return blocklinear.Descriptor{
		Width: width, Height: height, Depth: depth,
		BytesPerPixel:       bpp,
		BlockDim:            blocklinear.BlockDim{Width: blockW, Height: blockH, Depth: blockD},
		MipCount:            mips,
		LayerCount:          layers,
		BlockHeightOverride: blockHeight,
	}, nil
}

type sizeResponse struct {
	DeswizzledSize int `json:"deswizzled_size"`
	SwizzledSize   int `json:"swizzled_size"`
}

func handleSize(w http.ResponseWriter, r *http.Request) {
	d, err := descriptorFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sizeResponse{
		DeswizzledSize: d.DeswizzledSize(),
		SwizzledSize:   d.SwizzledSize(),
	})
}

func handlePlan(w http.ResponseWriter, r *http.Request) {
	d, err := descriptorFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, dump.BuildPlan(d))
}

type convertRequest struct {
	Descriptor blocklinear.Descriptor `json:"descriptor"`
	Direction  string                 `json:"direction"`
	DataBase64 string                 `json:"data_base64"`
}

func handleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to read request body"))
		return
	}

	var req convertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, errors.Wrap(err, "failed to parse request body"))
		return
	}

	data, err := decodeBase64(req.DataBase64)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to decode data_base64"))
		return
	}

	var result []byte
	switch req.Direction {
	case "", "swizzle":
		result, err = blocklinear.SwizzleSurface(req.Descriptor, data)
	case "deswizzle":
		result, err = blocklinear.DeswizzleSurface(req.Descriptor, data)
	default:
		err = errors.Errorf("unknown direction %q", req.Direction)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"data_base64": encodeBase64(result)})
}
