package entity

// Keypoint is one anatomical landmark returned by the pose detection
// service. X and Y may be pixel coordinates or normalized to [0,1]
// depending on the provider; the scoring pipeline only uses them
// relative to each other so either works.
type Keypoint struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Landmark names as emitted by the pose detection service.
const (
	KeypointNose          = "nose"
	KeypointLeftShoulder  = "left_shoulder"
	KeypointRightShoulder = "right_shoulder"
	KeypointLeftElbow     = "left_elbow"
	KeypointRightElbow    = "right_elbow"
	KeypointLeftWrist     = "left_wrist"
	KeypointRightWrist    = "right_wrist"
	KeypointLeftHip       = "left_hip"
	KeypointRightHip      = "right_hip"
	KeypointLeftKnee      = "left_knee"
	KeypointRightKnee     = "right_knee"
	KeypointLeftAnkle     = "left_ankle"
	KeypointRightAnkle    = "right_ankle"
	KeypointLeftIndex     = "left_index"
	KeypointRightIndex    = "right_index"
)

// PoseDetectionResult is the raw payload from the pose detection service.
type PoseDetectionResult struct {
	Keypoints []Keypoint `json:"keypoints"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Error     string     `json:"error,omitempty"`
}

// BallDetection is a basketball bounding box from the object detection
// provider. Coordinates are pixel-space in the analyzed frame.
type BallDetection struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
}
